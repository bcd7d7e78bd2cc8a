package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta POST /adoptions. limit (opcional) envuelve solo el POST.
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	h := http.Handler(submitHandler(svc))
	if limit != nil {
		h = limit(h)
	}
	r.Method(http.MethodPost, "/adoptions", h)
}

type submitRequest struct {
	PetID     string `json:"pet_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	BirthYear *int   `json:"birth_year,omitempty"`
}

type ackResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	PetName     string    `json:"pet_name"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// maxBodyBytes acota el formulario; un envío real pesa menos de 1KB.
const maxBodyBytes = 16 << 10

// submitHandler godoc
// @Summary Enviar interés de adopción
// @Description Valida el formulario (nombre, email, dirección, teléfono, año de nacimiento opcional y un pet existente) y devuelve un acuse local. No se persiste nada. Si `pet_id` viene vacío se toma de la query `?id=`.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param id query string false "ID de la mascota (alternativa a pet_id en el body)"
// @Param payload body submitRequest true "Formulario de adopción"
// @Success 201 {object} ackResponse
// @Failure 400 {object} validationResponse
// @Failure 413 {string} string "request too large"
// @Failure 429 {string} string "too many requests"
// @Router /adoptions [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// El pet puede venir por query (?id=) como en el link "adoptar" del detalle.
		if strings.TrimSpace(req.PetID) == "" {
			req.PetID = r.URL.Query().Get("id")
		}

		ack, err := svc.Submit(r.Context(), Request{
			PetID:     req.PetID,
			FullName:  req.FullName,
			Email:     req.Email,
			Address:   req.Address,
			Phone:     req.Phone,
			BirthYear: req.BirthYear,
		})
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, validationResponse{
					Error:  ErrInvalidInput.Error(),
					Fields: verr.Fields,
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, ackResponse{
			ID:          ack.ID,
			PetID:       ack.PetID,
			PetName:     ack.PetName,
			Message:     ack.Message,
			SubmittedAt: ack.SubmittedAt,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
