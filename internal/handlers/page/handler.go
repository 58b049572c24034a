package page

import (
	"net/http"

	"alora/config"
	"alora/infras/otel"
	"alora/shared/constant"
	"alora/transport/http/flash"
	"alora/web"

	"github.com/go-chi/chi/v5"
)

var titles = map[string]string{
	web.PageIndex:     "Home",
	web.PageAbout:     "About",
	web.PageBooking:   "Book an appointment",
	web.PageServices:  "Services",
	web.PageMedia:     "Media",
	web.PageContact:   "Contact",
	web.PageDashboard: "Dashboard",
	web.PageLogin:     "Login",
}

type Handler struct {
	renderer web.Renderer
	cfg      *config.Config
	otel     otel.Otel
}

func New(renderer web.Renderer, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		renderer: renderer,
		cfg:      cfg,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Show(web.PageIndex))
	router.Get("/about/", handler.Show(web.PageAbout))
	router.Get("/booking/", handler.Show(web.PageBooking))
	router.Get("/services/", handler.Show(web.PageServices))
	router.Get("/media/", handler.Show(web.PageMedia))
	router.Get("/dashboard/", handler.Show(web.PageDashboard))
	router.Get("/login/", handler.Show(web.PageLogin))
}

// Show renders a static page, consuming any pending flash message.
func (handler *Handler) Show(name string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Page")
		defer scope.End()

		scope.SetAttribute("page", name)

		handler.Render(writer, request, name, nil)
	}
}

// Render writes the named page with the shared layout data.
func (handler *Handler) Render(writer http.ResponseWriter, request *http.Request, name string, data any) {
	message, _ := flash.Pop(writer, request)

	handler.renderer.Render(writer, http.StatusOK, web.Page{
		Name:    name,
		Title:   titles[name],
		AppName: handler.cfg.App.Name,
		Flash:   message,
		Debug:   handler.cfg.Server.Debug,
		Data:    data,
	})
}
