package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const visitorKey ctxKey = "visitor"

const (
	VisitorHeader = "X-Visitor-ID"
	VisitorCookie = "visitor_id"

	maxVisitorIDLen  = 128
	visitorCookieTTL = 365 * 24 * time.Hour
)

// Visitor identifica al visitante anónimo (equivalente al "navegador" cuyo
// storage local guarda los vistos recientemente):
// - Si viene header X-Visitor-ID => se usa.
// - Si no, cookie visitor_id.
// - Si no hay ninguno => se genera un uuid, se setea cookie y se devuelve en el header.
func Visitor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sanitizeVisitorID(r.Header.Get(VisitorHeader))
			if id == "" {
				if c, err := r.Cookie(VisitorCookie); err == nil {
					id = sanitizeVisitorID(c.Value)
				}
			}

			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    id,
					Path:     "/",
					Expires:  time.Now().Add(visitorCookieTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(VisitorHeader, id)

			ctx := context.WithValue(r.Context(), visitorKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetVisitor(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(visitorKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithVisitor deja el visitante en el contexto sin pasar por HTTP (CLI/tests).
func WithVisitor(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorKey, visitorID)
}

func sanitizeVisitorID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || len(s) > maxVisitorIDLen {
		return ""
	}
	for _, r := range s {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return s
}
