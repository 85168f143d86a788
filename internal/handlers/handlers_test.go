package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankandrent/Packaginghippo-sub002/internal/config"
	"github.com/rankandrent/Packaginghippo-sub002/internal/database/queries"
	"github.com/rankandrent/Packaginghippo-sub002/internal/handlers"
	"github.com/rankandrent/Packaginghippo-sub002/internal/middleware"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
		Environment: "development",
		SiteName:    "Packaging Hippo",
	}
}

type stubCatalog struct {
	products, categories, testimonials int64
	summaries                          []queries.CategorySummary
	sections                           []queries.HomepageSectionRow
	err                                error
}

func (s *stubCatalog) CountProducts(ctx context.Context) (int64, error) { return s.products, s.err }
func (s *stubCatalog) CountCategories(ctx context.Context) (int64, error) {
	return s.categories, s.err
}
func (s *stubCatalog) CountTestimonials(ctx context.Context) (int64, error) {
	return s.testimonials, s.err
}
func (s *stubCatalog) ListCategorySummaries(ctx context.Context) ([]queries.CategorySummary, error) {
	return s.summaries, s.err
}
func (s *stubCatalog) ListHomepageSections(ctx context.Context) ([]queries.HomepageSectionRow, error) {
	return s.sections, s.err
}

type stubPinger struct{ err error }

func (p stubPinger) Health(ctx context.Context) error { return p.err }

// testRouter wires the handlers the same way the server does, minus metrics.
func testRouter(t *testing.T, catalog *stubCatalog, db stubPinger) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.New(testConfig(), catalog, db, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	h.Routes(r)
	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestHomeRedirectsToDashboard(t *testing.T) {
	rec := get(t, testRouter(t, &stubCatalog{}, stubPinger{}), "/")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestHealth(t *testing.T) {
	rec := get(t, testRouter(t, &stubCatalog{}, stubPinger{}), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = get(t, testRouter(t, &stubCatalog{}, stubPinger{err: errors.New("down")}), "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDashboard(t *testing.T) {
	rec := get(t, testRouter(t, &stubCatalog{products: 8, categories: 3, testimonials: 5}, stubPinger{}), "/admin")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Dashboard | Packaging Hippo</title>")
	assert.Contains(t, body, `data-stat="Products">8<`)
	assert.Contains(t, body, `overflow-y-auto`)
	assert.NotContains(t, body, `role="alert"`)
}

func TestDashboard_WarnsOnEmptyCatalog(t *testing.T) {
	rec := get(t, testRouter(t, &stubCatalog{testimonials: 2}, stubPinger{}), "/admin")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="alert"`)
}

func TestDashboard_QueryFailure(t *testing.T) {
	rec := get(t, testRouter(t, &stubCatalog{err: errors.New("boom")}, stubPinger{}), "/admin")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load dashboard")
}

func TestCategoriesPage(t *testing.T) {
	img := "https://cdn.example.com/a.png"
	catalog := &stubCatalog{summaries: []queries.CategorySummary{
		{Name: "Mailer Boxes", ImageURL: &img},
		{Name: "Rigid Boxes"},
	}}

	rec := get(t, testRouter(t, catalog, stubPinger{}), "/admin/categories")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Categories | Packaging Hippo</title>")
	assert.Contains(t, body, "Mailer Boxes")
	assert.Contains(t, body, "Rigid Boxes")
	assert.Contains(t, body, `href="/admin/categories" class=`)
}

func TestSectionsPage_SortsByOrder(t *testing.T) {
	catalog := &stubCatalog{sections: []queries.HomepageSectionRow{
		{SectionKey: "c", Order: 2},
		{SectionKey: "a", Order: 0, IsActive: true},
		{SectionKey: "b", Order: 1},
	}}

	rec := get(t, testRouter(t, catalog, stubPinger{}), "/admin/sections")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	a := strings.Index(body, `data-section="a"`)
	b := strings.Index(body, `data-section="b"`)
	c := strings.Index(body, `data-section="c"`)
	assert.True(t, a >= 0 && a < b && b < c)
}

func TestSectionsPage_QueryFailure(t *testing.T) {
	rec := get(t, testRouter(t, &stubCatalog{err: errors.New("boom")}, stubPinger{}), "/admin/sections")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
