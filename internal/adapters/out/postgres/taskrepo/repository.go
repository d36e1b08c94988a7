package taskrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/task"
	"grocery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL error code raised when an insert hits a
// unique index.
const uniqueViolation = "23505"

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves the task created at assignment time. The unique index on order_id
// makes a second task for the same order fail at the database even if two
// assignments race past the status check. That failure surfaces as an invalid
// transition so the losing caller sees the same conflict it would have seen
// reading the already assigned order.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewInvalidTransitionErrorWithCause(
				string(order.StatusPending), string(order.StatusAssigned), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a task's status change.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TaskDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a task by ID. The row is locked for update, so inside a
// transaction concurrent writers serialize on it instead of overwriting each
// other's status.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the task attached to an order, locking the row the
// same way Get does.
func (r *GormTaskRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*task.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAgent retrieves all tasks bound to a delivery agent, active ones first.
func (r *GormTaskRepository) GetByAgent(ctx context.Context, agentID string) ([]*task.Task, error) {
	if agentID == "" {
		return nil, errs.NewValueIsRequiredError("agentID")
	}

	// Terminal statuses sort last so the agent sees active work on top.
	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Order("status IN ('delivered', 'cancelled'), id").
		Find(&dtos, "agent_id = ?", agentID).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, aggregate)
	}

	return tasks, nil
}
