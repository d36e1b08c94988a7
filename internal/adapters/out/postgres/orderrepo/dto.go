// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The item snapshot is stored as a jsonb document: lines are immutable after
// submission, so they are never queried or updated individually.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      string    `gorm:"index"`
	Items           ItemsJSON `gorm:"type:jsonb"`
	TotalPrice      float64
	DeliveryAddress string
	PaymentMethod   string
	LocationLat     *float64
	LocationLng     *float64
	Status          string `gorm:"index"`
	CreatedAt       time.Time
	DeliveryAgentID *string `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one snapshot line inside the jsonb items document. The JSON keys
// match the read models so queries can decode the column directly.
type ItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef,omitempty"`
	Quantity  int     `json:"quantity"`
}

// ItemsJSON stores the snapshot lines as a jsonb column.
type ItemsJSON []ItemDTO

// Value implements driver.Valuer so GORM writes the lines as jsonb text.
func (items ItemsJSON) Value() (driver.Value, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for reading the jsonb column back.
func (items *ItemsJSON) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			ImageRef:  item.ImageRef(),
			Quantity:  item.Quantity(),
		})
	}

	var lat, lng *float64
	if point := aggregate.Location(); point != nil {
		latitude, longitude := point.Latitude(), point.Longitude()
		lat, lng = &latitude, &longitude
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID(),
		Items:           items,
		TotalPrice:      aggregate.TotalPrice(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PaymentMethod:   string(aggregate.PaymentMethod()),
		LocationLat:     lat,
		LocationLng:     lng,
		Status:          string(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveryAgentID: aggregate.DeliveryAgent(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the stored total and status
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, itemErr := order.NewItem(
			line.ProductID, line.Name, line.UnitPrice, line.ImageRef, line.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		items,
		dto.TotalPrice,
		dto.DeliveryAddress,
		order.PaymentMethod(dto.PaymentMethod),
		location,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveryAgentID,
	)
}
