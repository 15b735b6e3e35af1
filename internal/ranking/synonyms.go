package ranking

import "strings"

type synonymEntry struct {
	key   string
	terms []string
}

// synonymTable relaciona un problema con terminos afines. Es un slice y no un
// map porque la busqueda devuelve la primera clave contenida y el orden importa.
var synonymTable = []synonymEntry{
	{key: "anxiety", terms: []string{"stress", "panic", "worry", "fear"}},
	{key: "depression", terms: []string{"mood", "sadness", "bipolar"}},
	{key: "relationships", terms: []string{"family", "couple", "marriage", "divorce"}},
	{key: "trauma", terms: []string{"ptsd", "abuse", "grief", "loss"}},
	{key: "addiction", terms: []string{"substance", "alcohol", "dependency"}},
}

// SynonymsFor devuelve los terminos afines de la primera clave contenida en la
// etiqueta (ya en minusculas). Devuelve nil si ninguna clave aplica.
func SynonymsFor(label string) []string {
	for _, e := range synonymTable {
		if strings.Contains(label, e.key) {
			out := make([]string, len(e.terms))
			copy(out, e.terms)
			return out
		}
	}
	return nil
}

func matchesSynonym(candidateLabel, desiredLabel string) bool {
	for _, e := range synonymTable {
		if !strings.Contains(desiredLabel, e.key) {
			continue
		}
		for _, term := range e.terms {
			if strings.Contains(candidateLabel, term) {
				return true
			}
		}
		return false
	}
	return false
}
