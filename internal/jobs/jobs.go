package jobs

import (
	"context"
	"fmt"
	"time"

	"alora/config"
	"alora/infras/otel"
	"alora/internal/domains/export/model/dto"
	"alora/internal/domains/export/service"
	"alora/shared/constant"
	"alora/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs background work next to the HTTP server.
type Scheduler interface {
	Start() error
	Stop(ctx context.Context)
}

type schedulerImpl struct {
	cron   *cron.Cron
	export service.Export
	cfg    *config.Config
	otel   otel.Otel
}

func New(export service.Export, cfg *config.Config, otel otel.Otel) Scheduler {
	return &schedulerImpl{
		cron:   cron.New(cron.WithLocation(timezone.GetLocation())),
		export: export,
		cfg:    cfg,
		otel:   otel,
	}
}

// Start registers the nightly contact archive when archival has a schedule.
func (s *schedulerImpl) Start() error {
	archive := s.cfg.Export.Archive
	if !archive.Enable || archive.Schedule == constant.Empty {
		log.Info().Msg("Contact archive schedule disabled")

		return nil
	}

	_, err := s.cron.AddFunc(archive.Schedule, func() {
		yesterday := timezone.Today().AddDate(0, 0, -1)

		if err := ArchiveContacts(context.Background(), s.export, s.otel, yesterday); err != nil {
			log.Error().Err(err).Msg("Scheduled contact archive failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid archive schedule %q: %w", archive.Schedule, err)
	}

	s.cron.Start()

	log.Info().Str("schedule", archive.Schedule).Msg("Contact archive scheduled")

	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (s *schedulerImpl) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("Scheduler stopped before running jobs completed")
	}
}

// ArchiveContacts exports the submissions of a single day. The export service uploads the copy.
func ArchiveContacts(ctx context.Context, export service.Export, ot otel.Otel, day time.Time) (err error) {
	ctx, scope := ot.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".ArchiveContacts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date := day.Format(constant.DateOnlyFormat)

	file, err := export.Contacts(ctx, dto.ExportContactsRequest{StartDate: date, EndDate: date})
	if err != nil {
		return fmt.Errorf("failed to export contacts for %s: %w", date, err)
	}

	if file.ArchiveURL == constant.Empty {
		return fmt.Errorf("contacts for %s were not archived", date)
	}

	log.Info().Str("date", date).Int("rows", file.Rows).Str("url", file.ArchiveURL).Msg("Contacts archived")

	return nil
}
