package domain

import (
	"strings"
	"time"
)

// NoGenderPreference son los valores que el cliente usa para indicar "sin preferencia".
var NoGenderPreference = []string{"any", "будь-яка"}

type Client struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Budget            float64   `json:"budget"`
	PreferOnline      bool      `json:"prefer_online"`
	PreferOffline     bool      `json:"prefer_offline"`
	PreferredGender   string    `json:"preferred_gender"`
	PreferredLanguage string    `json:"preferred_language"`
	Issues            []string  `json:"issues"`
	CreatedAt         time.Time `json:"created_at"`
}

// PreferenceProfile son los criterios del cliente usados para puntuar especialistas.
// Es un valor inmutable: el motor de ranking nunca lo modifica.
type PreferenceProfile struct {
	Budget            float64  `json:"budget"`
	Issues            []string `json:"issues"`
	PreferredLanguage string   `json:"preferred_language,omitempty"`
	PreferredGender   string   `json:"preferred_gender,omitempty"`
	PreferOnline      bool     `json:"prefer_online"`
	PreferOffline     bool     `json:"prefer_offline"`
}

// Preferences construye el perfil de preferencias a partir del cliente persistido.
func (c Client) Preferences() PreferenceProfile {
	return PreferenceProfile{
		Budget:            c.Budget,
		Issues:            NormalizeLabels(c.Issues),
		PreferredLanguage: strings.TrimSpace(c.PreferredLanguage),
		PreferredGender:   strings.TrimSpace(c.PreferredGender),
		PreferOnline:      c.PreferOnline,
		PreferOffline:     c.PreferOffline,
	}
}

// SplitIssues convierte la columna legacy "a, b, c" en una lista de etiquetas.
func SplitIssues(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeLabels(strings.Split(raw, ","))
}

// JoinIssues es la operacion inversa de SplitIssues.
func JoinIssues(issues []string) string {
	return strings.Join(NormalizeLabels(issues), ",")
}

// NormalizeLabels recorta espacios y descarta etiquetas vacias, preservando el orden.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
