package ranking

import (
	"math"
	"strings"

	"psy-match/internal/domain"
)

const (
	overBudgetScore = 0.1
	priceSwing      = 0.3

	neutralCategoryScore = 0.5
	exactMatchScore      = 1.0
	synonymMatchScore    = 0.7
	singleLabelFloor     = 0.3 // modo legacy de un solo problema
	multiLabelFloor      = 0.0
	coverageBonus        = 0.2
	coveredThreshold     = 0.5

	languageMismatchScore = 0.2
	genderMismatchScore   = 0.3

	formatMatchScore = 0.5
	formatBothBonus  = 0.2
)

// PriceFit puntua el precio frente al presupuesto. Por encima del presupuesto
// vale 0.1; dentro, va de 1.0 (gratis) a 0.7 (igual al presupuesto).
func PriceFit(price, budget float64) float64 {
	if price < 0 {
		price = 0
	}
	if budget <= 0 {
		if price > 0 {
			return overBudgetScore
		}
		return 1.0
	}
	if price > budget {
		return overBudgetScore
	}
	return 1.0 - priceSwing*(price/budget)
}

// CategoryMatch compara las especializaciones del candidato con los problemas
// del cliente. Con un unico problema el piso es 0.3; con varios, 0 mas un bono
// de cobertura. La diferencia entre ambos pisos es intencional.
func CategoryMatch(candidateLabels, desiredLabels []string) float64 {
	candidate := lowerLabels(candidateLabels)
	desired := lowerLabels(desiredLabels)
	if len(candidate) == 0 || len(desired) == 0 {
		return neutralCategoryScore
	}

	if len(desired) == 1 {
		return bestLabelMatch(candidate, desired[0], singleLabelFloor)
	}

	var total float64
	covered := 0
	for _, d := range desired {
		best := bestLabelMatch(candidate, d, multiLabelFloor)
		total += best
		if best > coveredThreshold {
			covered++
		}
	}
	n := float64(len(desired))
	score := total/n + coverageBonus*float64(covered)/n
	return math.Min(score, 1.0)
}

func bestLabelMatch(candidate []string, desired string, floor float64) float64 {
	best := floor
	for _, c := range candidate {
		if s := labelMatch(c, desired); s > best {
			best = s
		}
	}
	return best
}

// labelMatch espera ambas etiquetas en minusculas.
func labelMatch(candidate, desired string) float64 {
	if strings.Contains(candidate, desired) || strings.Contains(desired, candidate) {
		return exactMatchScore
	}
	if matchesSynonym(candidate, desired) {
		return synonymMatchScore
	}
	return 0
}

func lowerLabels(labels []string) []string {
	out := domain.NormalizeLabels(labels)
	for i, l := range out {
		out[i] = strings.ToLower(l)
	}
	return out
}

// LanguageMatch: sin preferencia no penaliza; si no coincide vale 0.2.
func LanguageMatch(candidate, preferred string) float64 {
	preferred = strings.TrimSpace(preferred)
	if preferred == "" {
		return 1.0
	}
	if strings.EqualFold(strings.TrimSpace(candidate), preferred) {
		return 1.0
	}
	return languageMismatchScore
}

// GenderMatch: vacio o "any"/"будь-яка" significan sin preferencia.
func GenderMatch(candidate, preferred string) float64 {
	preferred = strings.TrimSpace(preferred)
	if preferred == "" || isNoGenderPreference(preferred) {
		return 1.0
	}
	if strings.EqualFold(strings.TrimSpace(candidate), preferred) {
		return 1.0
	}
	return genderMismatchScore
}

func isNoGenderPreference(v string) bool {
	for _, sentinel := range domain.NoGenderPreference {
		if strings.EqualFold(v, sentinel) {
			return true
		}
	}
	return false
}

// FormatMatch suma 0.5 por cada formato deseado que el especialista ofrece y
// 0.2 extra si ofrece ambos, con tope en 1.0.
func FormatMatch(offersRemote, offersInPerson, wantsRemote, wantsInPerson bool) float64 {
	score := 0.0
	if wantsRemote && offersRemote {
		score += formatMatchScore
	}
	if wantsInPerson && offersInPerson {
		score += formatMatchScore
	}
	if offersRemote && offersInPerson {
		score += formatBothBonus
	}
	return math.Min(score, 1.0)
}
