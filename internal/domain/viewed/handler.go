package viewed

import (
	"encoding/json"
	"net/http"

	"pet-adoption-catalog/internal/domain/pets"
	"pet-adoption-catalog/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, store *pets.Store) {
	r.Route("/me/viewed", func(vr chi.Router) {
		vr.Get("/", listViewedHandler(svc, store))
		vr.Delete("/", clearViewedHandler(svc))
		vr.Get("/{petID}", isViewedHandler(svc))
	})
}

type viewedListResponse struct {
	IDs  []string           `json:"ids"`
	Pets []pets.PetResponse `json:"pets"`
}

type isViewedResponse struct {
	PetID  string `json:"pet_id"`
	Viewed bool   `json:"viewed"`
}

// listViewedHandler godoc
// @Summary Vistos recientemente
// @Description Lista de ids del visitante (más reciente primero) y los pets resueltos contra el catálogo. Ids que ya no existen se omiten en `pets`.
// @Tags viewed
// @Produce json
// @Param X-Visitor-ID header string false "ID del visitante"
// @Success 200 {object} viewedListResponse
// @Failure 400 {string} string "missing visitor"
// @Router /me/viewed [get]
func listViewedHandler(svc *Service, store *pets.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := middleware.GetVisitor(r.Context())
		if !ok {
			http.Error(w, "missing visitor", http.StatusBadRequest)
			return
		}

		ids, err := svc.List(r.Context(), visitorID)
		if err != nil {
			http.Error(w, "missing visitor", http.StatusBadRequest)
			return
		}
		// ids y pets salen de la misma lectura
		recent := Resolve(r.Context(), ids, store)

		now := store.Now()
		out := viewedListResponse{
			IDs:  ids,
			Pets: make([]pets.PetResponse, 0, len(recent)),
		}
		for _, p := range recent {
			out.Pets = append(out.Pets, pets.ToPetResponse(p, now))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// isViewedHandler godoc
// @Summary ¿El visitante ya vio esta mascota?
// @Tags viewed
// @Produce json
// @Param X-Visitor-ID header string false "ID del visitante"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} isViewedResponse
// @Router /me/viewed/{petID} [get]
func isViewedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := middleware.GetVisitor(r.Context())
		if !ok {
			http.Error(w, "missing visitor", http.StatusBadRequest)
			return
		}

		petID := chi.URLParam(r, "petID")
		v, err := svc.IsViewed(r.Context(), visitorID, petID)
		if err != nil {
			http.Error(w, "missing visitor", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, isViewedResponse{PetID: petID, Viewed: v})
	}
}

// clearViewedHandler godoc
// @Summary Limpiar vistos recientemente
// @Tags viewed
// @Param X-Visitor-ID header string false "ID del visitante"
// @Success 204
// @Router /me/viewed [delete]
func clearViewedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := middleware.GetVisitor(r.Context())
		if !ok {
			http.Error(w, "missing visitor", http.StatusBadRequest)
			return
		}
		if err := svc.Clear(r.Context(), visitorID); err != nil {
			http.Error(w, "missing visitor", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
