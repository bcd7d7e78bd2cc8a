package adoptions

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minFullNameLen = 3
	minAddressLen  = 5
	minBirthYear   = 1900
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^([+]?[\s0-9]+)?(\d{3}|[(]?[0-9]+[)])?([-]?[\s]?[0-9])+$`)
)

// Validate chequea el esquema fijo del formulario. No verifica que el pet
// exista en el catálogo; eso lo hace Service.Submit.
// Devuelve nil si todo está ok.
func Validate(in Request, now time.Time) *ValidationError {
	verr := &ValidationError{}

	if strings.TrimSpace(in.PetID) == "" {
		verr.add("pet_id", "pet selection is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.FullName)) < minFullNameLen {
		verr.add("full_name", "full name is too short")
	}
	if !emailRe.MatchString(strings.TrimSpace(in.Email)) {
		verr.add("email", "invalid email")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Address)) < minAddressLen {
		verr.add("address", "invalid address")
	}
	if !phoneRe.MatchString(strings.TrimSpace(in.Phone)) {
		verr.add("phone", "invalid phone number")
	}
	if in.BirthYear != nil {
		y := *in.BirthYear
		if y < minBirthYear || y > now.Year() {
			verr.add("birth_year", "invalid birth year")
		}
	}

	if verr.empty() {
		return nil
	}
	return verr
}
