package pets

import (
	"sort"
	"time"
)

const DefaultPageSize = 12

// GetByID busca linealmente; el catálogo es chico y no amerita índice.
func GetByID(list []Pet, id string) (Pet, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}

func UniqueAnimalTypes(list []Pet) []string {
	return uniqueSorted(list, func(p Pet) string { return p.AnimalType })
}

func UniqueGenders(list []Pet) []string {
	return uniqueSorted(list, func(p Pet) string { return p.Gender })
}

func uniqueSorted(list []Pet, key func(Pet) string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range list {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Filter es el filtro simple del listado: nombre contiene search (sin importar
// mayúsculas) y tipo/género iguales al valor dado. Vacío = comodín.
// Función pura; preserva el orden de entrada.
func Filter(list []Pet, search, animalType, gender string) []Pet {
	out := make([]Pet, 0, len(list))
	for _, p := range list {
		if !containsFold(p.FirstName, search) {
			continue
		}
		if animalType != "" && p.AnimalType != animalType {
			continue
		}
		if gender != "" && p.Gender != gender {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Criteria son los cuatro predicados del catálogo, tal como llegan de la UI.
type Criteria struct {
	Search     string
	Gender     string
	AnimalType string
	Age        AgeBracket
}

// Query aplica los predicados en conjunción, normalizando género y especie
// de ambos lados. El rango de edad se recalcula con now en cada llamada.
func Query(list []Pet, c Criteria, now time.Time) []Pet {
	out := make([]Pet, 0, len(list))
	for _, p := range list {
		if !containsFold(p.FirstName, c.Search) {
			continue
		}
		if !isWildcard(c.Gender) && !genderMatches(p.Gender, c.Gender) {
			continue
		}
		if !isWildcard(c.AnimalType) && !speciesMatches(p.AnimalType, c.AnimalType) {
			continue
		}
		if c.Age != BracketAny && BracketOf(p, now) != c.Age {
			continue
		}
		out = append(out, p)
	}
	return out
}

type Page struct {
	Items    []Pet
	Total    int
	Pages    int
	Page     int
	PageSize int
}

// Paginate corta una página (base 1). Una página fuera de rango devuelve
// Items vacío, no error.
func Paginate(list []Pet, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(list)
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}

	out := Page{
		Items:    []Pet{},
		Total:    total,
		Pages:    pages,
		Page:     page,
		PageSize: pageSize,
	}
	if page < 1 || page > pages {
		return out
	}

	start := (page - 1) * pageSize
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}
	out.Items = append(out.Items, list[start:end]...)
	return out
}
