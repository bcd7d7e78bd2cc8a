package viewed

import (
	"encoding/json"
	"slices"
)

// DefaultCap: cuántos pets recuerda cada visitante.
const DefaultCap = 3

// Tracker es la lista de vistos recientemente de un visitante:
// más reciente primero, sin duplicados, nunca más de cap elementos.
// No es seguro para uso concurrente; Service serializa el acceso.
type Tracker struct {
	cap int
	ids []string
}

// NewTracker arma un tracker a partir de ids ya persistidos, aplicando las
// mismas reglas que Add (dedup conservando la primera aparición + recorte).
func NewTracker(capacity int, ids []string) *Tracker {
	if capacity < 1 {
		capacity = DefaultCap
	}
	t := &Tracker{cap: capacity, ids: make([]string, 0, capacity)}
	for _, id := range ids {
		if id == "" || slices.Contains(t.ids, id) {
			continue
		}
		if len(t.ids) == t.cap {
			break
		}
		t.ids = append(t.ids, id)
	}
	return t
}

func (t *Tracker) Cap() int { return t.cap }

// Add mueve id al frente: si ya estaba, se quita su aparición anterior.
// Después se recorta al cap (se descarta el menos reciente).
func (t *Tracker) Add(id string) {
	if id == "" {
		return
	}
	next := make([]string, 0, t.cap)
	next = append(next, id)
	for _, existing := range t.ids {
		if existing == id {
			continue
		}
		if len(next) == t.cap {
			break
		}
		next = append(next, existing)
	}
	t.ids = next
}

func (t *Tracker) IsViewed(id string) bool {
	return slices.Contains(t.ids, id)
}

func (t *Tracker) Clear() {
	t.ids = t.ids[:0]
}

// IDs devuelve una copia, más reciente primero.
func (t *Tracker) IDs() []string {
	return slices.Clone(t.ids)
}

func (t *Tracker) Len() int { return len(t.ids) }

// Encode serializa como array JSON de strings (formato persistido).
func Encode(ids []string) string {
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

// Decode interpreta el valor persistido. Ausente, JSON inválido, algo que no
// es array o un array con entradas no-string => lista vacía, nunca error:
// un estado corrupto es "sin historial".
func Decode(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return []string{}
		}
		out = append(out, s)
	}
	return out
}
