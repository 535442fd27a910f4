// Package jobs provides scheduled background tasks for the depot.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only read through query handlers; none of them change slot
// occupancy.
//
// # Available Jobs
//
//  1. OccupancyReportJob - logs free and occupied slot counts per warehouse.
//     Runs on OCCUPANCY_REPORT_SCHEDULE, every minute by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(listWarehousesHandler, config.OccupancyReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
package jobs
