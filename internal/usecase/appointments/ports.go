package appointments

import (
	"context"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/domain/notification"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/appointments/ports.go -package=appointmentsmock

type DealerDirectory interface {
	GetByID(ctx context.Context, id string, opts dealer.LookupOptions) (*dealer.Record, error)
}

type AppointmentEngine interface {
	Book(ctx context.Context, booking appointment.Booking) (*appointment.BookingResult, error)
	Update(ctx context.Context, upd appointment.Update) error
	ProviderSynch(ctx context.Context, synch appointment.ProviderSynch) error
	Reopen(ctx context.Context, appointmentID string) error
	GetByID(ctx context.Context, appointmentID string) (*appointment.Appointment, error)
	ListByUsers(ctx context.Context, q appointment.ListByIDs) ([]appointment.Appointment, error)
	ListByDealers(ctx context.Context, q appointment.ListByIDs) ([]appointment.Appointment, error)
	ListByOrder(ctx context.Context, orderID string, r appointment.Range) ([]appointment.Appointment, error)
	Cancel(ctx context.Context, c appointment.Cancellation) error
	Complete(ctx context.Context, c appointment.Completion) error
}

type Mailer interface {
	NotifyByPinpoint(ctx context.Context, req notification.PinpointRequest) error
}

// FailureNotifier reports a failed engine call to the service desk. It never
// fails itself.
type FailureNotifier interface {
	Notify(ctx context.Context, payload any, message string)
}
