package pets

import (
	"fmt"
	"strings"
	"time"
)

// Age = año actual - año de nacimiento. Cambia en cada cambio de año calendario.
func Age(p Pet, now time.Time) int {
	return now.Year() - p.BirthYear
}

func AgeDisplay(p Pet, now time.Time) string {
	age := Age(p, now)
	if age == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", age)
}

// IsYoung marca cachorros/jóvenes (hasta 2 años) para destacar en la UI.
func IsYoung(p Pet, now time.Time) bool {
	return Age(p, now) <= 2
}

// BracketOf ubica al pet en exactamente un rango:
// young (<=1), 1-3 (2..3), 4-7, 8+.
func BracketOf(p Pet, now time.Time) AgeBracket {
	age := Age(p, now)
	switch {
	case age <= 1:
		return BracketYoung
	case age <= 3:
		return Bracket1To3
	case age <= 7:
		return Bracket4To7
	default:
		return Bracket8Plus
	}
}

var bracketAliases = map[string]AgeBracket{
	"young": BracketYoung,
	"גורים": BracketYoung,
	"1-3":   Bracket1To3,
	"1–3":   Bracket1To3,
	"4-7":   Bracket4To7,
	"4–7":   Bracket4To7,
	"8+":    Bracket8Plus,
}

// ParseAgeBracket acepta los tokens del filtro (latinos o localizados).
// Vacío o "all" devuelve BracketAny.
func ParseAgeBracket(raw string) (AgeBracket, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if isWildcard(s) {
		return BracketAny, nil
	}
	b, ok := bracketAliases[s]
	if !ok {
		return BracketAny, fmt.Errorf("%w: unknown age bracket %q", ErrInvalidInput, raw)
	}
	return b, nil
}
