package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitorEcho() http.Handler {
	return Visitor()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetVisitor(r.Context())
		if !ok {
			http.Error(w, "no visitor", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(id))
	}))
}

func TestVisitor_FromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(VisitorHeader, "visitor-abc")
	rec := httptest.NewRecorder()

	visitorEcho().ServeHTTP(rec, req)

	assert.Equal(t, "visitor-abc", rec.Body.String())
	assert.Equal(t, "visitor-abc", rec.Header().Get(VisitorHeader))
	assert.Empty(t, rec.Result().Cookies(), "no cookie when the visitor is already known")
}

func TestVisitor_FromCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "cookie-visitor"})
	rec := httptest.NewRecorder()

	visitorEcho().ServeHTTP(rec, req)

	assert.Equal(t, "cookie-visitor", rec.Body.String())
}

func TestVisitor_HeaderWinsOverCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(VisitorHeader, "from-header")
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "from-cookie"})
	rec := httptest.NewRecorder()

	visitorEcho().ServeHTTP(rec, req)

	assert.Equal(t, "from-header", rec.Body.String())
}

func TestVisitor_GeneratesAndSetsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	visitorEcho().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Body.String()
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Header().Get(VisitorHeader))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitorCookie, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestVisitor_RejectsGarbageIDs(t *testing.T) {
	for _, raw := range []string{"has space", "tab\tid", "ñandú", strings.Repeat("x", maxVisitorIDLen+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(VisitorHeader, raw)
		rec := httptest.NewRecorder()

		visitorEcho().ServeHTTP(rec, req)

		assert.NotEqual(t, raw, rec.Body.String(), "raw %q should be replaced", raw)
		assert.Len(t, rec.Result().Cookies(), 1)
	}
}

func TestWithVisitor(t *testing.T) {
	ctx := WithVisitor(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "cli")
	id, ok := GetVisitor(ctx)
	assert.True(t, ok)
	assert.Equal(t, "cli", id)

	_, ok = GetVisitor(WithVisitor(ctx, ""))
	assert.False(t, ok)
}
