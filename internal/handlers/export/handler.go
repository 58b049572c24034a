package export

import (
	"net/http"

	"alora/infras/otel"
	"alora/internal/domains/export/model/dto"
	"alora/internal/domains/export/service"
	"alora/shared/constant"
	"alora/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/export-contacts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ExportContacts)
	})
}

// ExportContacts streams contact submissions in a date range as a spreadsheet.
// @Summary Export contact submissions
// @Description Download submissions with start_date <= submission date <= end_date (whole end day) as contacts.xlsx.
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} file "contacts.xlsx"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /export-contacts/ [get]
// @Security BearerAuth
func (handler *Handler) ExportContacts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportContacts")
	defer scope.End()

	query := request.URL.Query()
	req := dto.ExportContactsRequest{
		StartDate: query.Get(constant.RequestParamStartDate),
		EndDate:   query.Get(constant.RequestParamEndDate),
	}

	file, err := handler.service.Contacts(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("start_date", req.StartDate).Str("end_date", req.EndDate).Msg("failed to export contacts")

		response.WithError(writer, err)

		return
	}

	scope.SetAttributes(map[string]any{
		"export.rows":    file.Rows,
		"export.archive": file.ArchiveURL,
	})

	response.WithFile(writer, file.ContentType, file.FileName, file.Content)
}
