package test

import (
	"net/http"

	"alora/shared/constant"
	"alora/shared/timezone"
	"alora/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	statusSuccess  = "success"
	messageWorking = "API is working!"
)

type Response struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/test", func(r chi.Router) {
		r.HandleFunc("/", h.Test)
	})
}

// Test echoes request metadata so clients can check the API is reachable.
// @Summary API health echo
// @Tags Test
// @Produce json
// @Success 200 {object} test.Response
// @Router /api/test/ [get]
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	response.WithBody(w, http.StatusOK, Response{
		Status:    statusSuccess,
		Message:   messageWorking,
		Method:    r.Method,
		Path:      r.URL.Path,
		Timestamp: timezone.Format(timezone.Now(), constant.DateFormat),
	})
}
