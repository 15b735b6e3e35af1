package ranking

import (
	"errors"

	"psy-match/internal/domain"
)

// Row son las puntuaciones crudas de un candidato, una por criterio.
type Row [NumCriteria]float64

// Map expone la fila por nombre de criterio.
func (r Row) Map() map[string]float64 {
	m := make(map[string]float64, NumCriteria)
	for i, v := range r {
		m[criterionNames[i]] = v
	}
	return m
}

// Matrix es la matriz de decision: una fila por candidato en orden de entrada.
type Matrix []Row

var ErrEmptyPool = errors.New("empty candidate pool")

type scorerFunc func(s domain.Specialist, p domain.PreferenceProfile) float64

var scorers = [NumCriteria]scorerFunc{
	CriterionPrice: func(s domain.Specialist, p domain.PreferenceProfile) float64 {
		return PriceFit(s.Price, p.Budget)
	},
	CriterionCategory: func(s domain.Specialist, p domain.PreferenceProfile) float64 {
		return CategoryMatch(s.Specializations, p.Issues)
	},
	CriterionLanguage: func(s domain.Specialist, p domain.PreferenceProfile) float64 {
		return LanguageMatch(s.Language, p.PreferredLanguage)
	},
	CriterionGender: func(s domain.Specialist, p domain.PreferenceProfile) float64 {
		return GenderMatch(s.Gender, p.PreferredGender)
	},
	CriterionFormat: func(s domain.Specialist, p domain.PreferenceProfile) float64 {
		return FormatMatch(s.Online, s.Offline, p.PreferOnline, p.PreferOffline)
	},
}

// ScoreRow aplica los cinco evaluadores a un especialista.
func ScoreRow(s domain.Specialist, p domain.PreferenceProfile) Row {
	var row Row
	for j, score := range scorers {
		row[j] = score(s, p)
	}
	return row
}

// BuildMatrix arma la matriz N×5 preservando el orden de los especialistas.
func BuildMatrix(specialists []domain.Specialist, profile domain.PreferenceProfile) (Matrix, error) {
	if len(specialists) == 0 {
		return nil, ErrEmptyPool
	}
	m := make(Matrix, len(specialists))
	for i, s := range specialists {
		m[i] = ScoreRow(s, profile)
	}
	return m, nil
}
