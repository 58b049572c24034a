package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"alora/config"
	"alora/infras/otel/mocks"
	"alora/infras/s3"
	s3Mocks "alora/infras/s3/mocks"
	contactMocks "alora/internal/domains/contact/mocks"
	contactModel "alora/internal/domains/contact/model"
	"alora/internal/domains/export/model/dto"
	"alora/internal/domains/export/service"
	"alora/shared/constant"
	gDto "alora/shared/dto"
	"alora/shared/failure"
	"alora/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func readRows(t *testing.T, content []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)

	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{dto.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(dto.SheetName)
	require.NoError(t, err)

	return rows
}

func submissions() []contactModel.ContactSubmission {
	loc := timezone.GetLocation()

	return []contactModel.ContactSubmission{
		{
			ID:             "c1",
			Name:           "Ana",
			Email:          "ana@example.com",
			Subject:        "Hours",
			Message:        "Open on Sunday?",
			SubmissionDate: time.Date(2026, 3, 1, 9, 30, 0, 0, loc),
		},
		{
			ID:             "c2",
			Name:           "Budi",
			Email:          "budi@example.com",
			Subject:        "Price",
			Message:        "How much is a facial?",
			SubmissionDate: time.Date(2026, 3, 31, 23, 59, 0, 0, loc),
		},
	}
}

func TestBuildWorkbook(t *testing.T) {
	content, err := service.BuildWorkbook(submissions())
	require.NoError(t, err)

	rows := readRows(t, content)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email", "Message", "Submission Date"}, rows[0])
	assert.Equal(t, []string{"Ana", "ana@example.com", "Open on Sunday?", "2026-03-01"}, rows[1])
	assert.Equal(t, []string{"Budi", "budi@example.com", "How much is a facial?", "2026-03-31"}, rows[2])

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)

	defer f.Close()

	styleID, err := f.GetCellStyle(dto.SheetName, "D1")
	require.NoError(t, err)

	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestBuildWorkbook_Empty(t *testing.T) {
	content, err := service.BuildWorkbook(nil)
	require.NoError(t, err)

	rows := readRows(t, content)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Name", "Email", "Message", "Submission Date"}, rows[0])
}

func TestSubmissionRange(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	filter := service.SubmissionRange(start, end)
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(contact_submissions.submission_date >= :range_start AND contact_submissions.submission_date < :range_end)", where)
	assert.Equal(t, start, args["range_start"])
	assert.Equal(t, end, args["range_end"])
}

func TestExportService_Contacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contactMocks.NewMockContactRepository(ctrl)

	svc := service.New(repo, &config.Config{}, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]contactModel.ContactSubmission, error) {
			assert.Equal(t, contactModel.FieldSubmissionDate, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			_, args := filter.GetWhereClause()
			start, _ := args["range_start"].(time.Time)
			end, _ := args["range_end"].(time.Time)

			assert.Equal(t, "2026-03-01", start.Format(time.DateOnly))
			assert.Equal(t, "2026-04-01", end.Format(time.DateOnly))

			return submissions(), nil
		})

	file, err := svc.Contacts(context.Background(), dto.ExportContactsRequest{StartDate: "2026-03-01", EndDate: "2026-03-31"})
	require.NoError(t, err)

	assert.Equal(t, dto.FileName, file.FileName)
	assert.Equal(t, constant.ContentTypeXLSX, file.ContentType)
	assert.Equal(t, 2, file.Rows)
	assert.Empty(t, file.ArchiveURL)
	assert.Len(t, readRows(t, file.Content), 3)
}

func TestExportService_Contacts_InvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(contactMocks.NewMockContactRepository(ctrl), &config.Config{}, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	file, err := svc.Contacts(context.Background(), dto.ExportContactsRequest{StartDate: "2026-04-01", EndDate: "2026-03-01"})
	require.NoError(t, err)

	assert.Zero(t, file.Rows)
	assert.Len(t, readRows(t, file.Content), 1)
}

func TestExportService_Contacts_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		req  dto.ExportContactsRequest
	}{
		{name: "missing start", req: dto.ExportContactsRequest{EndDate: "2026-03-01"}},
		{name: "missing end", req: dto.ExportContactsRequest{StartDate: "2026-03-01"}},
		{name: "bad format", req: dto.ExportContactsRequest{StartDate: "01/03/2026", EndDate: "2026-03-31"}},
		{name: "impossible date", req: dto.ExportContactsRequest{StartDate: "2026-02-30", EndDate: "2026-03-31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service.New(contactMocks.NewMockContactRepository(ctrl), &config.Config{}, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

			_, err := svc.Contacts(context.Background(), tt.req)

			assert.True(t, failure.Is(err, failure.KindInvalidDateRange))
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestExportService_Contacts_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contactMocks.NewMockContactRepository(ctrl)
	svc := service.New(repo, &config.Config{}, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := svc.Contacts(context.Background(), dto.ExportContactsRequest{StartDate: "2026-03-01", EndDate: "2026-03-31"})

	assert.True(t, failure.Is(err, failure.KindStorageFailure))
}

func TestExportService_Contacts_Archive(t *testing.T) {
	tests := []struct {
		name      string
		uploadErr error
		wantURL   string
	}{
		{name: "uploaded", wantURL: "https://files.alora.test/archive/contacts.xlsx"},
		{name: "upload failure does not fail export", uploadErr: errors.New("access denied")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := contactMocks.NewMockContactRepository(ctrl)
			storage := s3Mocks.NewMockS3(ctrl)

			cfg := &config.Config{}
			cfg.Export.Archive.Enable = true
			cfg.Export.Archive.Directory = "archive"

			svc := service.New(repo, cfg, mocks.NewOtel(), storage)

			repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(submissions(), nil)
			storage.EXPECT().Put(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, object s3.Object) (string, error) {
					assert.True(t, strings.HasPrefix(object.Key, "archive/contacts_2026-03-01_2026-03-31_"), object.Key)
					assert.Equal(t, constant.ContentTypeXLSX, object.ContentType)
					assert.NotEmpty(t, object.Body)

					return tt.wantURL, tt.uploadErr
				})

			file, err := svc.Contacts(context.Background(), dto.ExportContactsRequest{StartDate: "2026-03-01", EndDate: "2026-03-31"})
			require.NoError(t, err)

			assert.Equal(t, tt.wantURL, file.ArchiveURL)
			assert.Equal(t, 2, file.Rows)
		})
	}
}
