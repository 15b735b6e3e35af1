package ranking

import (
	"fmt"
	"math"
)

const neutralCloseness = 0.5

// Solve devuelve la cercania relativa al ideal de cada fila, en el mismo orden.
//
// Todos los criterios son de beneficio (mas es mejor). Una columna de norma
// cero se normaliza a 0 y no aporta diferenciacion. Si una fila esta a
// distancia cero del ideal y del anti-ideal su puntuacion es 0.5.
//
// Una celda NaN/Inf es una violacion de contrato del constructor de la matriz
// y provoca panic.
func Solve(m Matrix, w Weights) []float64 {
	scores := make([]float64, len(m))
	if len(m) == 0 {
		return scores
	}
	mustBeFinite(m, w)

	var norms [NumCriteria]float64
	for _, row := range m {
		for j, v := range row {
			norms[j] += v * v
		}
	}
	for j := range norms {
		norms[j] = math.Sqrt(norms[j])
	}

	weighted := make(Matrix, len(m))
	for i, row := range m {
		for j, v := range row {
			if norms[j] > 0 {
				weighted[i][j] = v / norms[j] * w[j]
			}
		}
	}

	ideal, anti := weighted[0], weighted[0]
	for _, row := range weighted[1:] {
		for j, v := range row {
			ideal[j] = math.Max(ideal[j], v)
			anti[j] = math.Min(anti[j], v)
		}
	}

	for i, row := range weighted {
		dPlus := distance(row, ideal)
		dMinus := distance(row, anti)
		if dPlus+dMinus == 0 {
			scores[i] = neutralCloseness
			continue
		}
		scores[i] = clamp01(dMinus / (dPlus + dMinus))
	}
	return scores
}

func distance(a, b Row) float64 {
	var sum float64
	for j := range a {
		d := a[j] - b[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func mustBeFinite(m Matrix, w Weights) {
	for j, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("ranking: non-finite weight for %s", Criterion(j)))
		}
	}
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				panic(fmt.Sprintf("ranking: non-finite cell at row %d, %s", i, Criterion(j)))
			}
		}
	}
}
