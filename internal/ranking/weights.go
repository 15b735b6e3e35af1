package ranking

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Criterion identifica una columna de la matriz de decision.
type Criterion int

const (
	CriterionPrice Criterion = iota
	CriterionCategory
	CriterionLanguage
	CriterionGender
	CriterionFormat

	NumCriteria = 5
)

var criterionNames = [NumCriteria]string{
	CriterionPrice:    "price",
	CriterionCategory: "category",
	CriterionLanguage: "language",
	CriterionGender:   "gender",
	CriterionFormat:   "format",
}

func (c Criterion) String() string {
	if c < 0 || int(c) >= NumCriteria {
		return fmt.Sprintf("criterion(%d)", int(c))
	}
	return criterionNames[c]
}

// CriterionNames devuelve los nombres de los criterios en orden de columna.
func CriterionNames() []string {
	out := make([]string, NumCriteria)
	copy(out, criterionNames[:])
	return out
}

// ParseCriterion busca un criterio por nombre (sin distinguir mayusculas).
func ParseCriterion(name string) (Criterion, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range criterionNames {
		if n == name {
			return Criterion(i), true
		}
	}
	return 0, false
}

// Weights es el vector de pesos por criterio. No necesita sumar 1.
type Weights [NumCriteria]float64

var ErrInvalidWeights = errors.New("invalid ranking weights")

// DefaultWeights devuelve los pesos por defecto: precio 25%, especializacion 35%,
// idioma 15%, genero 10%, formato 15%.
func DefaultWeights() Weights {
	return Weights{
		CriterionPrice:    0.25,
		CriterionCategory: 0.35,
		CriterionLanguage: 0.15,
		CriterionGender:   0.10,
		CriterionFormat:   0.15,
	}
}

// Validate exige pesos finitos y no negativos.
func (w Weights) Validate() error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeights, Criterion(i), v)
		}
	}
	return nil
}

// With aplica overrides parciales por nombre de criterio sobre una copia de w.
// Un nombre desconocido o un valor invalido devuelven ErrInvalidWeights.
func (w Weights) With(overrides map[string]float64) (Weights, error) {
	out := w
	if len(overrides) == 0 {
		return out, nil
	}
	// Orden fijo para que el error sea determinista.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c, ok := ParseCriterion(name)
		if !ok {
			return w, fmt.Errorf("%w: unknown criterion %q", ErrInvalidWeights, name)
		}
		out[c] = overrides[name]
	}
	if err := out.Validate(); err != nil {
		return w, err
	}
	return out, nil
}

// Map expone los pesos por nombre de criterio.
func (w Weights) Map() map[string]float64 {
	m := make(map[string]float64, NumCriteria)
	for i, v := range w {
		m[criterionNames[i]] = v
	}
	return m
}
