package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
)

// GeoLocator resolves a delivery address to coordinates. Acquisition is
// best-effort with a bounded wait: the submit handler caps the call with a
// timeout and creates the order without coordinates when resolution fails.
type GeoLocator interface {
	Locate(ctx context.Context, address string) (kernel.GeoPoint, error)
}
