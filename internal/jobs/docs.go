// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs run on cron schedules via github.com/robfig/cron/v3 and are
// coordinated through JobManager:
//
//	jobManager := jobs.NewJobManager(autoAssignmentJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// AutoAssignmentJob sweeps pending orders on its schedule and assigns each
// one to a delivery agent round-robin. It is opt-in: the composition root
// only registers it when a schedule is configured, so deployments that want
// purely manual dispatch simply leave it off.
package jobs
