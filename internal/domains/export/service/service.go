package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"time"

	"alora/config"
	"alora/infras/otel"
	"alora/infras/s3"
	contactModel "alora/internal/domains/contact/model"
	contactRepo "alora/internal/domains/contact/repository"
	"alora/internal/domains/export/model/dto"
	"alora/shared/constant"
	gDto "alora/shared/dto"
	"alora/shared/failure"
	"alora/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	defaultArchiveDirectory = "exports"

	columnWidthName    = 24
	columnWidthEmail   = 32
	columnWidthMessage = 60
	columnWidthDate    = 16
)

type Export interface {
	Contacts(ctx context.Context, req dto.ExportContactsRequest) (dto.ExportFile, error)
}

type serviceImpl struct {
	contactRepo contactRepo.Contact
	cfg         *config.Config
	otel        otel.Otel
	storage     s3.S3
}

func New(contactRepo contactRepo.Contact, cfg *config.Config, otel otel.Otel, storage s3.S3) Export {
	return &serviceImpl{
		contactRepo: contactRepo,
		cfg:         cfg,
		otel:        otel,
		storage:     storage,
	}
}

func (s *serviceImpl) Contacts(ctx context.Context, req dto.ExportContactsRequest) (file dto.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportContacts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := req.Range()
	if err != nil {
		return file, err
	}

	var submissions []contactModel.ContactSubmission

	// inverted ranges match nothing
	if start.Before(end) {
		submissions, err = s.contactRepo.GetAll(ctx, gDto.QueryParams{
			SortBy:  contactModel.FieldSubmissionDate,
			SortDir: gDto.SortDirAsc,
		}, SubmissionRange(start, end))
		if err != nil {
			log.Error().Err(err).Msg("failed to query contact submissions for export")

			return file, failure.Internal(failure.KindStorageFailure, dto.MessageExportFailed, err) //nolint:wrapcheck
		}
	}

	content, err := BuildWorkbook(submissions)
	if err != nil {
		log.Error().Err(err).Msg("failed to build contact workbook")

		return file, failure.Internal(failure.KindStorageFailure, dto.MessageExportFailed, err) //nolint:wrapcheck
	}

	file = dto.ExportFile{
		FileName:    dto.FileName,
		ContentType: constant.ContentTypeXLSX,
		Content:     content,
		Rows:        len(submissions),
	}

	if s.cfg.Export.Archive.Enable {
		file.ArchiveURL = s.archive(ctx, req, content)
	}

	log.Info().Str("start_date", req.StartDate).Str("end_date", req.EndDate).Int("rows", file.Rows).Msg("contact submissions exported")

	return file, nil
}

// archive uploads a copy of the workbook. Failures are logged and yield an empty URL.
func (s *serviceImpl) archive(ctx context.Context, req dto.ExportContactsRequest, content []byte) string {
	directory := s.cfg.Export.Archive.Directory
	if directory == "" {
		directory = defaultArchiveDirectory
	}

	key := path.Join(directory, fmt.Sprintf("contacts_%s_%s_%s.xlsx", req.StartDate, req.EndDate, uuid.NewString()))

	url, err := s.storage.Put(ctx, s3.Object{Key: key, ContentType: constant.ContentTypeXLSX, Body: content})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to archive contact export")

		return constant.Empty
	}

	return url
}

// SubmissionRange matches submissions with start <= submission_date < end.
func SubmissionRange(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "range_start",
				Field:    contactModel.FieldSubmissionDate,
				Table:    contactModel.TableName,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
			},
			gDto.Filter{
				ArgName:  "range_end",
				Field:    contactModel.FieldSubmissionDate,
				Table:    contactModel.TableName,
				Operator: gDto.FilterOperatorLess,
				Value:    end,
			},
		},
	}
}

// BuildWorkbook renders submissions into a single-sheet xlsx document.
func BuildWorkbook(submissions []contactModel.ContactSubmission) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, dto.SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := dto.Header
	if err := f.SetSheetRow(dto.SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(dto.Header), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve header range: %w", err)
	}

	if err = f.SetCellStyle(dto.SheetName, "A1", lastHeader, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, submission := range submissions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve row %d: %w", i+2, err)
		}

		row := []any{
			submission.Name,
			submission.Email,
			submission.Message,
			timezone.Format(submission.SubmissionDate, constant.DateOnlyFormat),
		}

		if err = f.SetSheetRow(dto.SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	widths := []float64{columnWidthName, columnWidthEmail, columnWidthMessage, columnWidthDate}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column %d: %w", i+1, err)
		}

		if err = f.SetColWidth(dto.SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
