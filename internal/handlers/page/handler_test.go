package page_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alora/config"
	"alora/infras/otel/mocks"
	"alora/internal/handlers/page"
	"alora/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Pages(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "Alora"

	handler := page.New(web.MustNewRenderer(), cfg, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	tests := []struct {
		path  string
		title string
	}{
		{path: "/", title: "Home"},
		{path: "/about/", title: "About"},
		{path: "/booking/", title: "Book an appointment"},
		{path: "/services/", title: "Services"},
		{path: "/media/", title: "Media"},
		{path: "/dashboard/", title: "Dashboard"},
		{path: "/login/", title: "Login"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "<title>"+tt.title+" | Alora</title>")
		})
	}
}
