// Package jobs provides scheduled background tasks for the line service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewLineInventoryReportJob(countHandler, cfg.InventoryReportSchedule, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// LineInventoryReportJob logs the number of lines per status, every five
// minutes by default. It only reads and never changes a line.
package jobs
