package export_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alora/infras/otel/mocks"
	exportMocks "alora/internal/domains/export/mocks"
	"alora/internal/domains/export/model/dto"
	"alora/internal/handlers/export"
	"alora/shared/constant"
	"alora/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *exportMocks.MockExport) http.Handler {
	handler := export.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_ExportContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := exportMocks.NewMockExport(ctrl)

	svc.EXPECT().
		Contacts(gomock.Any(), dto.ExportContactsRequest{StartDate: "2026-03-01", EndDate: "2026-03-31"}).
		Return(dto.ExportFile{
			FileName:    dto.FileName,
			ContentType: constant.ContentTypeXLSX,
			Content:     []byte("PK\x03\x04"),
			Rows:        2,
		}, nil)

	recorder := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/export-contacts/?start_date=2026-03-01&end_date=2026-03-31", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeXLSX, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="contacts.xlsx"`, recorder.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "PK\x03\x04", recorder.Body.String())
}

func TestHandler_ExportContacts_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := exportMocks.NewMockExport(ctrl)

	svc.EXPECT().Contacts(gomock.Any(), dto.ExportContactsRequest{}).
		Return(dto.ExportFile{}, failure.Validation(failure.KindInvalidDateRange, dto.MessageInvalidDateRange, nil))

	recorder := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/export-contacts/", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), string(failure.KindInvalidDateRange))
}
