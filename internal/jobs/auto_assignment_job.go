package jobs

import (
	"context"
	"errors"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultAutoAssignSchedule dispatches pending orders every 30 seconds.
const DefaultAutoAssignSchedule = "*/30 * * * * *"

// AutoAssignmentJob periodically sweeps pending orders, oldest first, and
// hands each one to an agent with no active task. Manual assignment through
// the API stays available; the job only picks up what dispatchers left
// waiting.
type AutoAssignmentJob struct {
	handler commands.AssignAgentCommandHandler
	orders  ports.OrderRepository
	tasks   ports.TaskRepository
	agents  ports.AgentDirectory
	cron    *cron.Cron
	logger  *slog.Logger

	schedule string
}

// NewAutoAssignmentJob creates the job with the given cron schedule. An empty
// schedule falls back to DefaultAutoAssignSchedule. The schedule uses the
// six-field form with a seconds column.
func NewAutoAssignmentJob(
	handler commands.AssignAgentCommandHandler,
	orders ports.OrderRepository,
	tasks ports.TaskRepository,
	agents ports.AgentDirectory,
	schedule string,
	logger *slog.Logger,
) *AutoAssignmentJob {
	if schedule == "" {
		schedule = DefaultAutoAssignSchedule
	}

	return &AutoAssignmentJob{
		handler:  handler,
		orders:   orders,
		tasks:    tasks,
		agents:   agents,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_assignment_job"),
		schedule: schedule,
	}
}

// Start begins the periodic assignment sweep.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.assignPending(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the assignment sweep.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto assignment job stopped")
}

// assignPending runs one sweep. Having no pending orders or no free agents is
// routine, not an error. Each assignment is independent; one failure never
// blocks the rest of the batch.
func (j *AutoAssignmentJob) assignPending(ctx context.Context) {
	pending, err := j.orders.GetAllPending(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Fetching pending orders failed", "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	free, err := j.freeAgents(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Finding free agents failed", "error", err)
		return
	}

	// Pending orders arrive oldest first; the queue drains fairly.
	for _, pendingOrder := range pending {
		if len(free) == 0 {
			return
		}
		agent := free[0]
		free = free[1:]

		cmd, err := commands.NewAssignAgentCommand(pendingOrder.ID(), agent.ID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Building assignment command failed",
				"orderId", pendingOrder.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A dispatcher may have assigned or cancelled the order since the
			// sweep started. That conflict is routine, not a system fault.
			if errors.Is(err, errs.ErrInvalidTransition) {
				continue
			}
			j.logger.ErrorContext(ctx, "Auto assignment failed",
				"orderId", pendingOrder.ID().String(), "agentId", agent.ID, "error", err)
		}
	}
}

// freeAgents returns the roster members with no task in a non-terminal
// status, in roster order.
func (j *AutoAssignmentJob) freeAgents(ctx context.Context) ([]ports.DeliveryAgent, error) {
	roster, err := j.agents.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	free := make([]ports.DeliveryAgent, 0, len(roster))
	for _, agent := range roster {
		tasks, err := j.tasks.GetByAgent(ctx, agent.ID)
		if err != nil {
			return nil, err
		}

		busy := false
		for _, agentTask := range tasks {
			if !agentTask.Status().IsTerminal() {
				busy = true
				break
			}
		}

		if !busy {
			free = append(free, agent)
		}
	}

	return free, nil
}
