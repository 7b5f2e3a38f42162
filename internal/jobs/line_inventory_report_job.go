package jobs

import (
	"context"
	"time"

	"telecom/internal/core/application/usecases/queries"
	"telecom/internal/core/domain/model/line"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultInventoryReportSchedule = "0 */5 * * * *"

	inventoryReportTimeout = 30 * time.Second
)

type LineStatusCounter interface {
	Handle(ctx context.Context, query queries.CountLinesByStatusQuery) (map[line.Status]int64, error)
}

// LineInventoryReportJob periodically logs how many lines sit in each status.
type LineInventoryReportJob struct {
	counter  LineStatusCounter
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewLineInventoryReportJob takes a six-field cron expression (seconds first).
// An empty schedule means DefaultInventoryReportSchedule.
func NewLineInventoryReportJob(counter LineStatusCounter, schedule string, logger *zap.Logger) *LineInventoryReportJob {
	if schedule == "" {
		schedule = DefaultInventoryReportSchedule
	}
	return &LineInventoryReportJob{
		counter:  counter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "line_inventory_report_job")),
	}
}

func (j *LineInventoryReportJob) Name() string { return "line inventory report" }

func (j *LineInventoryReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Line inventory report job started", zap.String("schedule", j.schedule))
	return nil
}

// Run produces one report. Failures are logged; the next tick tries again.
func (j *LineInventoryReportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), inventoryReportTimeout)
	defer cancel()

	counts, err := j.counter.Handle(ctx, queries.NewCountLinesByStatusQuery())
	if err != nil {
		j.logger.Error("Line inventory report failed", zap.Error(err))
		return
	}

	fields := make([]zap.Field, 0, len(counts)+1)
	var total int64
	for _, status := range line.Statuses() {
		fields = append(fields, zap.Int64(status.String(), counts[status]))
		total += counts[status]
	}
	fields = append(fields, zap.Int64("total", total))

	j.logger.Info("Line inventory", fields...)
}

// Stop waits for a running report to finish.
func (j *LineInventoryReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Line inventory report job stopped")
}
