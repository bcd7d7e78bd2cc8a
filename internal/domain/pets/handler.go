package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption-catalog/internal/middleware"
	"pet-adoption-catalog/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ViewRecorder registra que un visitante abrió el detalle de un pet.
// Lo implementa viewed.Service; se define acá para evitar ciclos (viewed importa pets).
type ViewRecorder interface {
	AddViewed(ctx context.Context, visitorID, petID string) error
}

type HandlerOptions struct {
	PageSize int
	Views    ViewRecorder // puede ser nil: el detalle no registra vistas
	Logger   logger.Logger
}

func RegisterRoutes(r chi.Router, store *Store, opts HandlerOptions) {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(store, opts.PageSize))
		pr.Get("/options", optionsHandler(store))

		// Detalle: además registra la vista en la lista de recientes del visitante
		pr.Get("/{petID}", getPetHandler(store, opts.Views, opts.Logger))
	})
}

type PetResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	BirthYear   int    `json:"birth_year"`
	Age         int    `json:"age"`
	AgeDisplay  string `json:"age_display"`
	AgeBracket  string `json:"age_bracket"`
	IsYoung     bool   `json:"is_young"`
	AnimalType  string `json:"animal_type"`
	Species     string `json:"species"`
	Gender      string `json:"gender"`
	GenderNorm  string `json:"gender_canonical"`
	Description string `json:"description"`
	PictureURL  string `json:"picture_url"`
}

type pageResponse struct {
	Items    []PetResponse `json:"items"`
	Total    int           `json:"total"`
	Pages    int           `json:"pages"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type optionsResponse struct {
	AnimalTypes []string `json:"animal_types"`
	Genders     []string `json:"genders"`
	AgeBrackets []string `json:"age_brackets"`
}

// listPetsHandler godoc
// @Summary Listar y filtrar el catálogo
// @Description Aplica los filtros en conjunción (nombre, género, especie, rango de edad) y pagina el resultado. Valores vacíos o "all" no filtran. Una página fuera de rango devuelve items vacío.
// @Tags pets
// @Produce json
// @Param search query string false "Substring del nombre (sin distinguir mayúsculas)"
// @Param type query string false "Especie (dog, cat, כלב, חתול u otro texto exacto)"
// @Param gender query string false "Género (male, female, זכר, נקבה)"
// @Param age query string false "Rango de edad (young, 1-3, 4-7, 8+)"
// @Param page query int false "Página base 1 (default 1)"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} pageResponse
// @Failure 400 {string} string "invalid age / page"
// @Router /pets [get]
func listPetsHandler(store *Store, defaultPageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		age, err := ParseAgeBracket(q.Get("age"))
		if err != nil {
			http.Error(w, "invalid age bracket", http.StatusBadRequest)
			return
		}

		page, err := intParam(q.Get("page"), 1)
		if err != nil {
			http.Error(w, "page must be an integer", http.StatusBadRequest)
			return
		}
		pageSize, err := intParam(q.Get("page_size"), defaultPageSize)
		if err != nil || pageSize <= 0 {
			http.Error(w, "page_size must be a positive integer", http.StatusBadRequest)
			return
		}

		res := store.Search(r.Context(), Criteria{
			Search:     q.Get("search"),
			Gender:     q.Get("gender"),
			AnimalType: q.Get("type"),
			Age:        age,
		}, page, pageSize)

		now := store.Now()
		out := pageResponse{
			Items:    make([]PetResponse, 0, len(res.Items)),
			Total:    res.Total,
			Pages:    res.Pages,
			Page:     res.Page,
			PageSize: res.PageSize,
		}
		for _, p := range res.Items {
			out.Items = append(out.Items, ToPetResponse(p, now))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// optionsHandler godoc
// @Summary Opciones de filtro
// @Description Valores distintos de especie y género presentes en el catálogo (orden lexicográfico) y los rangos de edad fijos.
// @Tags pets
// @Produce json
// @Success 200 {object} optionsResponse
// @Router /pets/options [get]
func optionsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o := store.Options(r.Context())

		brackets := make([]string, 0, len(o.AgeBrackets))
		for _, b := range o.AgeBrackets {
			brackets = append(brackets, string(b))
		}

		writeJSON(w, http.StatusOK, optionsResponse{
			AnimalTypes: o.AnimalTypes,
			Genders:     o.Genders,
			AgeBrackets: brackets,
		})
	}
}

// getPetHandler godoc
// @Summary Detalle de una mascota
// @Description Devuelve el pet y lo agrega al frente de la lista de vistos recientemente del visitante (`X-Visitor-ID` o cookie `visitor_id`).
// @Tags pets
// @Produce json
// @Param X-Visitor-ID header string false "ID del visitante; si falta se genera y se devuelve en cookie"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(store *Store, views ViewRecorder, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		p, err := store.GetByID(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if views != nil {
			if visitorID, ok := middleware.GetVisitor(r.Context()); ok {
				// la recencia nunca rompe la vista de detalle
				if err := views.AddViewed(r.Context(), visitorID, p.ID); err != nil {
					log.Warn("record view failed", map[string]any{"pet_id": p.ID, "error": err})
				}
			}
		}

		writeJSON(w, http.StatusOK, ToPetResponse(p, store.Now()))
	}
}

// ToPetResponse arma la vista JSON con los valores derivados calculados con now.
func ToPetResponse(p Pet, now time.Time) PetResponse {
	return PetResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		BirthYear:   p.BirthYear,
		Age:         Age(p, now),
		AgeDisplay:  AgeDisplay(p, now),
		AgeBracket:  string(BracketOf(p, now)),
		IsYoung:     IsYoung(p, now),
		AnimalType:  p.AnimalType,
		Species:     string(NormalizeSpecies(p.AnimalType)),
		Gender:      p.Gender,
		GenderNorm:  string(NormalizeGender(p.Gender)),
		Description: p.Description,
		PictureURL:  p.PictureURL,
	}
}

func intParam(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/viewed/adoptions)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
