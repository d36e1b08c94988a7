package agentdir

import (
	"context"
	"errors"

	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgentDirectory implements AgentDirectory using GORM.
type GormAgentDirectory struct {
	db *gorm.DB
}

// NewGormAgentDirectory creates a directory backed by the agents table.
func NewGormAgentDirectory(db *gorm.DB) *GormAgentDirectory {
	return &GormAgentDirectory{db: db}
}

// Get retrieves one agent by id.
func (d *GormAgentDirectory) Get(ctx context.Context, id string) (ports.DeliveryAgent, error) {
	if id == "" {
		return ports.DeliveryAgent{}, errs.NewValueIsRequiredError("agentID")
	}

	var dto AgentDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DeliveryAgent{}, errs.NewObjectNotFoundError("agent", id)
		}
		return ports.DeliveryAgent{}, err
	}

	return toAgent(dto), nil
}

// GetAll retrieves every registered agent sorted by name.
func (d *GormAgentDirectory) GetAll(ctx context.Context) ([]ports.DeliveryAgent, error) {
	var dtos []AgentDTO
	if err := d.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	agents := make([]ports.DeliveryAgent, 0, len(dtos))
	for _, dto := range dtos {
		agents = append(agents, toAgent(dto))
	}

	return agents, nil
}
