package jobs

import (
	"fmt"
)

// startStopper is the contract every scheduled job satisfies.
type startStopper interface {
	Start() error
	Stop()
}

// JobManager coordinates the application's scheduled jobs behind one start
// and stop surface.
type JobManager struct {
	jobs []startStopper
}

// NewJobManager creates a manager over the given jobs. Jobs start in the
// order given and stop in reverse.
func NewJobManager(jobs ...startStopper) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts every job. If one fails to start, the already running ones
// are stopped before the error returns.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for j := i - 1; j >= 0; j-- {
				jm.jobs[j].Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}

	return nil
}

// StopAll stops all jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
