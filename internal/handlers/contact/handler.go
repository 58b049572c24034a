package contact

import (
	"errors"
	"net/http"

	"alora/infras/otel"
	"alora/internal/domains/contact/model/dto"
	"alora/internal/domains/contact/service"
	"alora/internal/handlers/page"
	"alora/shared/constant"
	"alora/shared/failure"
	"alora/transport/http/flash"
	"alora/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const contactPath = "/contact/"

type Handler struct {
	service service.Contact
	page    page.Handler
	otel    otel.Otel
}

func New(service service.Contact, page page.Handler, otel otel.Otel) Handler {
	return Handler{
		service: service,
		page:    page,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ShowForm)
		routerGroup.Post("/", handler.SubmitForm)
	})
}

// ShowForm renders the contact page and any pending flash message.
func (handler *Handler) ShowForm(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ShowContactForm")
	defer scope.End()

	handler.page.Render(writer, request, web.PageContact, nil)
}

// SubmitForm relays a contact form post and redirects back with the outcome.
// @Summary Submit the contact form
// @Description Stores the message, emails it to the clinic and redirects to /contact/ with a flash message.
// @Tags Contact
// @Accept x-www-form-urlencoded
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param subject formData string true "Subject"
// @Param message formData string true "Message"
// @Success 303 "Redirect to /contact/"
// @Router /contact/ [post]
func (handler *Handler) SubmitForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContactForm")
	defer scope.End()

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to parse contact form")
	}

	req := dto.SubmitContactRequest{
		Name:    request.PostFormValue("name"),
		Email:   request.PostFormValue("email"),
		Subject: request.PostFormValue("subject"),
		Message: request.PostFormValue("message"),
	}

	if err := handler.service.Submit(ctx, req); err != nil {
		scope.TraceError(err)

		flash.Set(writer, flash.Error(flashText(err)))
		http.Redirect(writer, request, contactPath, http.StatusSeeOther)

		return
	}

	scope.AddEvent("Contact message relayed")

	flash.Set(writer, flash.Success(dto.MessageSent))
	http.Redirect(writer, request, contactPath, http.StatusSeeOther)
}

func flashText(err error) string {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return dto.MessageDeliveryFailed
}
