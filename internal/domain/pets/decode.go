package pets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMalformedSource = errors.New("malformed catalog source")
)

// sourcePet refleja el JSON empaquetado: id puede venir como string o número.
type sourcePet struct {
	ID          json.RawMessage `json:"id"`
	FirstName   string          `json:"firstName"`
	BirthYear   json.Number     `json:"birthYear"`
	AnimalType  string          `json:"animalType"`
	Gender      string          `json:"gender"`
	Description string          `json:"description"`
	PictureURL  string          `json:"pictureUrl"`
}

// Decode parsea el documento del catálogo (un array JSON).
// Cualquier entrada inválida invalida el documento completo.
func Decode(raw []byte) ([]Pet, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedSource)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var items []sourcePet
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]Pet, 0, len(items))
	for i, it := range items {
		id, err := coerceID(it.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedSource, i, err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: item %d: duplicate id %q", ErrMalformedSource, i, id)
		}
		seen[id] = struct{}{}

		year, err := coerceYear(it.BirthYear)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedSource, i, err)
		}

		out = append(out, Pet{
			ID:          id,
			FirstName:   it.FirstName,
			BirthYear:   year,
			AnimalType:  it.AnimalType,
			Gender:      it.Gender,
			Description: it.Description,
			PictureURL:  it.PictureURL,
		})
	}
	return out, nil
}

func coerceID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", errors.New("missing id")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", errors.New("empty id")
		}
		return s, nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("id must be string or number: %s", string(raw))
	}
	return canonicalNumber(n)
}

// canonicalNumber escribe un id numérico en su forma decimal corta:
// 1.0 => "1", 1e3 => "1000", 2.50 => "2.5".
func canonicalNumber(n json.Number) (string, error) {
	if v, err := n.Int64(); err == nil {
		return strconv.FormatInt(v, 10), nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("invalid numeric id %q", n.String())
	}
	if f == 0 {
		return "0", nil
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func coerceYear(n json.Number) (int, error) {
	if n == "" {
		return 0, errors.New("missing birthYear")
	}
	if v, err := n.Int64(); err == nil {
		return int(v), nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid birthYear %q", n.String())
	}
	return int(f), nil
}
