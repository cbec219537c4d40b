package appointments

import (
	"context"
	"log/slog"
	"strings"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/pkg/config"
	"appointment-gateway/internal/pkg/errs"
	"appointment-gateway/internal/pkg/patch"

	"github.com/jinzhu/copier"
)

//go:generate mockgen -source=appointments.go -destination=../../../tests/mock/appointments/usecase.go -package=appointmentsmock

type AppointmentUseCase interface {
	Create(ctx context.Context, booking appointment.Booking) (*appointment.BookingResult, error)
	Update(ctx context.Context, upd appointment.Update) error
	ProviderSynch(ctx context.Context, dealerID string, synch appointment.ProviderSynch) error
	Reopen(ctx context.Context, appointmentID, dealerID string) error
	Get(ctx context.Context, appointmentID string) (*appointment.ClientAppointment, error)
	ListByUser(ctx context.Context, userID string, r appointment.Range) ([]appointment.ClientAppointment, error)
	ListByDealer(ctx context.Context, dealerID string, r appointment.Range) ([]appointment.ClientAppointment, error)
	ListByDealers(ctx context.Context, dealerIDs []string, r appointment.Range) ([]appointment.ClientAppointment, error)
	ListByOrder(ctx context.Context, orderID string, r appointment.Range) ([]appointment.ClientAppointment, error)
	Cancel(ctx context.Context, appointmentID, comment string) error
	Complete(ctx context.Context, appointmentID, comment string) error
}

type appointmentUseCaseImpl struct {
	dealers     DealerDirectory
	engine      AppointmentEngine
	notifier    FailureNotifier
	defaultShop string
	logger      *slog.Logger
}

func NewAppointmentUseCase(
	dealers DealerDirectory,
	engine AppointmentEngine,
	notifier FailureNotifier,
	cfg config.BookingConfig,
	logger *slog.Logger,
) AppointmentUseCase {
	return &appointmentUseCaseImpl{
		dealers:     dealers,
		engine:      engine,
		notifier:    notifier,
		defaultShop: cfg.DefaultShopIdentifier,
		logger:      logger,
	}
}

func (u *appointmentUseCaseImpl) Create(ctx context.Context, booking appointment.Booking) (*appointment.BookingResult, error) {
	if booking.Customer == nil || booking.Customer.ID == "" {
		return nil, errs.Mark(ErrCustomerRequired, errs.ErrInvalidInput)
	}

	record, err := u.dealers.GetByID(ctx, booking.DealerID, dealer.LookupOptions{})
	if err != nil {
		return nil, asRemote(err)
	}
	if !record.Bookable() {
		u.logger.Warn("booking rejected, dealer not bookable",
			slog.String("dealer_id", booking.DealerID),
			slog.Bool("installer", record.Installer),
			slog.Bool("has_engine", record.HasEngine()))
		return nil, ErrDealerNotBookable
	}

	payload := booking
	booking.ShopIdentifier = patch.CoalesceZero(booking.ShopIdentifier, u.defaultShop)
	booking.AppointmentProvider = appointment.ProviderFor(record.Engine)

	result, err := u.engine.Book(ctx, booking)
	if err != nil {
		return nil, u.fail(ctx, payload, err)
	}
	return result, nil
}

func (u *appointmentUseCaseImpl) Update(ctx context.Context, upd appointment.Update) error {
	if err := u.engine.Update(ctx, upd); err != nil {
		return u.fail(ctx, map[string]any{"appointmentId": upd.AppointmentID}, err)
	}
	return nil
}

func (u *appointmentUseCaseImpl) ProviderSynch(ctx context.Context, dealerID string, synch appointment.ProviderSynch) error {
	dealerID = strings.TrimLeft(dealerID, "0")
	if _, err := u.dealers.GetByID(ctx, dealerID, dealer.LookupOptions{}); err != nil {
		return asRemote(err)
	}

	if err := u.engine.ProviderSynch(ctx, synch); err != nil {
		return u.fail(ctx, map[string]any{
			"providerAppointmentId": synch.ProviderAppointmentID,
			"dealerId":              dealerID,
			"appointmentDate":       synch.AppointmentDate,
		}, err)
	}
	return nil
}

func (u *appointmentUseCaseImpl) Reopen(ctx context.Context, appointmentID, dealerID string) error {
	if _, err := u.dealers.GetByID(ctx, dealerID, dealer.LookupOptions{}); err != nil {
		return asRemote(err)
	}

	if err := u.engine.Reopen(ctx, appointmentID); err != nil {
		return u.fail(ctx, map[string]any{"appointmentId": appointmentID, "dealerId": dealerID}, err)
	}
	return nil
}

func (u *appointmentUseCaseImpl) Get(ctx context.Context, appointmentID string) (*appointment.ClientAppointment, error) {
	found, err := u.engine.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, u.fail(ctx, map[string]any{"appointmentId": appointmentID}, err)
	}

	client, err := toClient(*found)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (u *appointmentUseCaseImpl) ListByUser(ctx context.Context, userID string, r appointment.Range) ([]appointment.ClientAppointment, error) {
	list, err := u.engine.ListByUsers(ctx, appointment.ListByIDs{
		Range: r,
		IDs:   []string{decodeUserID(userID)},
	})
	if err != nil {
		return nil, u.fail(ctx, rangePayload("userId", userID, r), err)
	}
	return toClientList(list)
}

func (u *appointmentUseCaseImpl) ListByDealer(ctx context.Context, dealerID string, r appointment.Range) ([]appointment.ClientAppointment, error) {
	list, err := u.engine.ListByDealers(ctx, appointment.ListByIDs{Range: r, IDs: []string{dealerID}})
	if err != nil {
		return nil, u.fail(ctx, rangePayload("dealerId", dealerID, r), err)
	}
	return toClientList(list)
}

func (u *appointmentUseCaseImpl) ListByDealers(ctx context.Context, dealerIDs []string, r appointment.Range) ([]appointment.ClientAppointment, error) {
	list, err := u.engine.ListByDealers(ctx, appointment.ListByIDs{Range: r, IDs: dealerIDs})
	if err != nil {
		return nil, u.fail(ctx, rangePayload("id", dealerIDs, r), err)
	}
	return toClientList(list)
}

func (u *appointmentUseCaseImpl) ListByOrder(ctx context.Context, orderID string, r appointment.Range) ([]appointment.ClientAppointment, error) {
	list, err := u.engine.ListByOrder(ctx, orderID, r)
	if err != nil {
		return nil, u.fail(ctx, rangePayload("orderId", orderID, r), err)
	}
	return toClientList(list)
}

func (u *appointmentUseCaseImpl) Cancel(ctx context.Context, appointmentID, comment string) error {
	payload := map[string]any{"appointmentId": appointmentID, "comment": comment}

	found, err := u.engine.GetByID(ctx, appointmentID)
	if err != nil {
		return u.fail(ctx, payload, err)
	}

	err = u.engine.Cancel(ctx, appointment.Cancellation{
		AppointmentID:       appointmentID,
		DealerID:            found.DealerID,
		AppointmentProvider: found.AppointmentProvider,
		Comment:             comment,
	})
	if err != nil {
		return u.fail(ctx, payload, err)
	}
	return nil
}

func (u *appointmentUseCaseImpl) Complete(ctx context.Context, appointmentID, comment string) error {
	payload := map[string]any{"appointmentId": appointmentID, "comment": comment}

	// the appointment must exist before it can be completed
	if _, err := u.engine.GetByID(ctx, appointmentID); err != nil {
		return u.fail(ctx, payload, err)
	}

	if err := u.engine.Complete(ctx, appointment.Completion{AppointmentID: appointmentID, Comment: comment}); err != nil {
		return u.fail(ctx, payload, err)
	}
	return nil
}

// fail notifies the service desk and hands the upstream status back to the caller.
func (u *appointmentUseCaseImpl) fail(ctx context.Context, payload any, err error) error {
	remote := asRemote(err)
	u.notifier.Notify(ctx, payload, remote.Message)
	return remote
}

func rangePayload(key string, id any, r appointment.Range) map[string]any {
	return map[string]any{
		key:        id,
		"status":   r.Status,
		"fromDate": r.DateFrom,
		"toDate":   r.DateTo,
	}
}

// user ids may arrive with an encoded pipe
func decodeUserID(id string) string {
	return strings.ReplaceAll(id, "%7C", "|")
}

func toClient(a appointment.Appointment) (appointment.ClientAppointment, error) {
	var client appointment.ClientAppointment
	if err := copier.Copy(&client, &a); err != nil {
		return appointment.ClientAppointment{}, errs.Wrap(err, "failed to copy appointment")
	}
	return client, nil
}

func toClientList(list []appointment.Appointment) ([]appointment.ClientAppointment, error) {
	out := make([]appointment.ClientAppointment, 0, len(list))
	for _, a := range list {
		client, err := toClient(a)
		if err != nil {
			return nil, err
		}
		out = append(out, client)
	}
	return out, nil
}
