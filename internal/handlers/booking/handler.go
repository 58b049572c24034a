package booking

import (
	"net/http"

	"alora/infras/otel"
	"alora/internal/domains/booking/model/dto"
	"alora/internal/domains/booking/service"
	"alora/shared/constant"
	gDto "alora/shared/dto"
	"alora/shared/failure"
	"alora/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
	})
}

// DashboardRouter mounts the bookings listing used by the admin dashboard.
func (handler *Handler) DashboardRouter(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Validate and store an appointment request. Every field is required; date must be YYYY-MM-DD and not in the past; mobile must be 10-15 digits.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/ [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	payload, err := dto.ParseBookingPayload(request.Body)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to parse booking payload")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, payload)
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to create booking")
		}

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + booking.ID)

	response.WithBody(writer, http.StatusCreated, booking)
}

// GetBookings lists every booking, newest first.
// @Summary List bookings
// @Description Retrieve all bookings ordered by creation time, newest first. page and limit are optional.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/dashboard/ [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	bookings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithBody(writer, http.StatusOK, bookings)
}
