package domain

// SpecialistMatch es un especialista con su puntuacion TOPSIS para un perfil dado.
type SpecialistMatch struct {
	Specialist
	TopsisScore float64            `json:"topsis_score"`
	TopsisRank  int                `json:"topsis_rank"`
	Band        string             `json:"band"`
	Criteria    map[string]float64 `json:"criteria,omitempty"` // Puntuacion cruda por criterio
}
