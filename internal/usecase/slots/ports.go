package slots

import (
	"context"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/slots/ports.go -package=slotsmock

type DealerLocator interface {
	FindByLocation(ctx context.Context, q dealer.LocationQuery) (*dealer.LocationResult, error)
	GetByID(ctx context.Context, id string, opts dealer.LookupOptions) (*dealer.Record, error)
}

// AvailabilityEngine answers one batched request covering many dealers.
type AvailabilityEngine interface {
	FreeSlots(ctx context.Context, batch []appointment.AvailabilityRequest) ([]appointment.DealerAvailability, error)
}
