package pets

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tabla fija de vocabularios aceptados para género (token latino + etiqueta hebrea).
var genderTable = map[string]Gender{
	"male":   GenderMale,
	"זכר":    GenderMale,
	"female": GenderFemale,
	"נקבה":   GenderFemale,
}

// Para especie se busca el token como substring ("dog", "big dog", "כלב רועים").
var speciesTable = []struct {
	token   string
	species Species
}{
	{"dog", SpeciesDog},
	{"כלב", SpeciesDog},
	{"cat", SpeciesCat},
	{"חתול", SpeciesCat},
}

// Valores que significan "sin filtro".
var wildcards = map[string]struct{}{
	"":    {},
	"all": {},
	"כל":  {},
	"הכל": {},
}

func isWildcard(s string) bool {
	_, ok := wildcards[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func NormalizeGender(raw string) Gender {
	if g, ok := genderTable[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return g
	}
	return GenderUnknown
}

func NormalizeSpecies(raw string) Species {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, e := range speciesTable {
		if strings.Contains(s, e.token) {
			return e.species
		}
	}
	return SpeciesOther
}

// fold aplica case folding Unicode; un Caser no se comparte entre goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold(haystack), fold(needle))
}

func speciesMatches(petType, want string) bool {
	ws := NormalizeSpecies(want)
	if ws != SpeciesOther {
		return NormalizeSpecies(petType) == ws
	}
	return fold(strings.TrimSpace(petType)) == fold(strings.TrimSpace(want))
}

// genderMatches compara por género canónico; un valor fuera de la tabla solo
// coincide con el mismo texto (sin distinguir mayúsculas).
func genderMatches(petGender, want string) bool {
	wg := NormalizeGender(want)
	if wg != GenderUnknown {
		return NormalizeGender(petGender) == wg
	}
	return fold(strings.TrimSpace(petGender)) == fold(strings.TrimSpace(want))
}
