package router

import (
	"alora/config"
	_ "alora/docs"
	"alora/internal/handlers/auth"
	"alora/internal/handlers/booking"
	"alora/internal/handlers/contact"
	"alora/internal/handlers/export"
	"alora/internal/handlers/page"
	"alora/internal/handlers/test"
	"alora/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Contact contact.Handler
	Export  export.Handler
	Page    page.Handler
	Test    test.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Page.Router(router)
	r.DomainHandlers.Contact.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Test.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)

		routerGroup.Group(func(admin chi.Router) {
			r.protect(admin)
			r.DomainHandlers.Booking.DashboardRouter(admin)
		})
	})

	router.Group(func(admin chi.Router) {
		r.protect(admin)
		r.DomainHandlers.Export.Router(admin)
	})
}

// protect gates the group behind API key or bearer token plus role checks when admin auth is enabled.
func (r *Router) protect(router chi.Router) {
	if !r.Config.App.AdminAuth.Enable {
		return
	}

	router.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
		Config:         cfg,
	}
}
