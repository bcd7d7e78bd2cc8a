package adoptions

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Request es el formulario de interés en adoptar.
type Request struct {
	PetID     string
	FullName  string
	Email     string
	Address   string
	Phone     string
	BirthYear *int // opcional
}

// Acknowledgment es el acuse local de la solicitud. No se persiste nada.
type Acknowledgment struct {
	ID          string
	PetID       string
	PetName     string
	Message     string
	SubmittedAt time.Time
}

// ValidationError lleva un mensaje por campo (clave = nombre del campo JSON).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return ErrInvalidInput.Error() + ": " + strings.Join(keys, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = msg
}

func (e *ValidationError) empty() bool { return len(e.Fields) == 0 }
