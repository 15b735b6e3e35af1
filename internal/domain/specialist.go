package domain

import "time"

// Specialist es un psicologo que puede ser recomendado a un cliente.
type Specialist struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Education       string    `json:"education,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	Specializations []string  `json:"specializations"`
	Price           float64   `json:"price"`
	Online          bool      `json:"online"`  // Atiende en remoto
	Offline         bool      `json:"offline"` // Atiende presencial
	Gender          string    `json:"gender"`
	Language        string    `json:"language"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// OffersBothFormats indica si el especialista trabaja en remoto y presencial.
func (s Specialist) OffersBothFormats() bool {
	return s.Online && s.Offline
}
