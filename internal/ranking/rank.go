package ranking

import (
	"sort"

	"psy-match/internal/domain"
)

// Result es la posicion de un especialista en el ranking.
type Result struct {
	Index        int     // posicion en la lista de entrada
	SpecialistID string
	Score        float64
	Rank         int // 1 = mejor
	Criteria     Row
}

// Rank puntua y ordena los especialistas de mayor a menor cercania al ideal.
// Los empates conservan el orden de entrada. Un pool vacio devuelve un slice
// vacio sin invocar al solver.
func Rank(specialists []domain.Specialist, profile domain.PreferenceProfile, w Weights) ([]Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(specialists) == 0 {
		return []Result{}, nil
	}

	m, err := BuildMatrix(specialists, profile)
	if err != nil {
		return nil, err
	}
	scores := Solve(m, w)

	results := make([]Result, len(specialists))
	for i, s := range specialists {
		results[i] = Result{
			Index:        i,
			SpecialistID: s.ID,
			Score:        scores[i],
			Criteria:     m[i],
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}

const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandPartial   = "partial"
)

// Band clasifica una puntuacion: 80%+ excelente, 60-80% buena, resto parcial.
func Band(score float64) string {
	switch {
	case score >= 0.8:
		return BandExcellent
	case score >= 0.6:
		return BandGood
	default:
		return BandPartial
	}
}
