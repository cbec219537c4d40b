package slots

import (
	"context"
	"log/slog"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/pkg/clock"
	"appointment-gateway/internal/pkg/errs"
	"appointment-gateway/internal/pkg/patch"
)

// SlotsQuery holds the availability window shared by both lookups.
type SlotsQuery struct {
	Channel      *string
	Quantity     *int
	FromDate     string
	NumberOfDays *int
	Services     []string
}

type FreeSlotsQuery struct {
	Latitude  float64
	Longitude float64
	Distance  *float64
	Country   []string
	SlotsQuery
}

func (q FreeSlotsQuery) geoQuery() dealer.GeoQuery {
	return dealer.GeoQuery{
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		Distance:  q.Distance,
		Country:   q.Country,
		Channel:   q.Channel,
	}
}

// DealerSlots is a dealer joined with its normalized free slots. Distance is
// set only for dealers found by location.
type DealerSlots struct {
	DealerID   string
	DealerName string
	Address    dealer.Address
	GeoPoint   dealer.GeoPoint
	TimeSlots  []appointment.TimeSlot
	Distance   *float64
}

//go:generate mockgen -source=slots.go -destination=../../../tests/mock/slots/usecase.go -package=slotsmock

type SlotsUseCase interface {
	GetFreeSlots(ctx context.Context, q FreeSlotsQuery) ([]*DealerSlots, error)
	GetFreeSlotsByDealer(ctx context.Context, dealerID string, q SlotsQuery) (*DealerSlots, error)
}

type slotsUseCaseImpl struct {
	locator DealerLocator
	engine  AvailabilityEngine
	clock   clock.Clock
	logger  *slog.Logger
}

func NewSlotsUseCase(locator DealerLocator, engine AvailabilityEngine, clk clock.Clock, logger *slog.Logger) SlotsUseCase {
	return &slotsUseCaseImpl{
		locator: locator,
		engine:  engine,
		clock:   clk,
		logger:  logger,
	}
}

func (s *slotsUseCaseImpl) GetFreeSlots(ctx context.Context, q FreeSlotsQuery) ([]*DealerSlots, error) {
	located, err := s.locator.FindByLocation(ctx, dealer.NewInstallerSearch(q.geoQuery()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to locate dealers")
	}

	candidates := make(map[string]dealer.WithDistance, len(located.Dealers))
	batch := make([]appointment.AvailabilityRequest, 0, len(located.Dealers))
	for _, found := range located.Dealers {
		if !found.Dealer.HasEngine() {
			continue
		}
		candidates[found.Dealer.ID] = found
		batch = append(batch, s.availabilityRequest(&found.Dealer, q.SlotsQuery))
	}
	if len(batch) == 0 {
		s.logger.Debug("no bookable dealers near location", "located", len(located.Dealers))
		return []*DealerSlots{}, nil
	}

	availability, err := s.engine.FreeSlots(ctx, batch)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query free slots")
	}
	if len(availability) == 0 {
		return []*DealerSlots{}, nil
	}

	return joinAvailability(candidates, availability)
}

func (s *slotsUseCaseImpl) GetFreeSlotsByDealer(ctx context.Context, dealerID string, q SlotsQuery) (*DealerSlots, error) {
	record, err := s.locator.GetByID(ctx, dealerID, dealer.LookupOptions{InstallerOnly: true})
	if err != nil {
		return nil, s.unavailable(dealerID, ReasonUpstreamFailure, err)
	}

	// the engine is queried before the capability check, both failures look the same to callers
	availability, err := s.engine.FreeSlots(ctx, []appointment.AvailabilityRequest{s.availabilityRequest(record, q)})
	if err != nil {
		return nil, s.unavailable(dealerID, ReasonUpstreamFailure, err)
	}
	if !record.HasEngine() {
		return nil, s.unavailable(dealerID, ReasonUnsupportedEngine, nil)
	}

	var free []appointment.RawInterval
	if len(availability) > 0 {
		free = availability[0].FreeSlots
	}
	timeSlots, err := appointment.NormalizeSlots(free)
	if err != nil {
		return nil, s.unavailable(dealerID, ReasonUpstreamFailure, err)
	}

	return newDealerSlots(dealerID, record, timeSlots, nil), nil
}

func (s *slotsUseCaseImpl) availabilityRequest(record *dealer.Record, q SlotsQuery) appointment.AvailabilityRequest {
	windowDays := appointment.DefaultWindowDays
	if q.NumberOfDays != nil && *q.NumberOfDays > 0 {
		windowDays = *q.NumberOfDays
	}
	services := q.Services
	if services == nil {
		services = []string{}
	}

	return appointment.AvailabilityRequest{
		DealerID:   record.ID,
		Provider:   appointment.ProviderFor(record.Engine),
		Channel:    q.Channel,
		Quantity:   q.Quantity,
		FromDate:   patch.CoalesceZero(q.FromDate, clock.Today(s.clock)),
		WindowDays: windowDays,
		Services:   services,
	}
}

func (s *slotsUseCaseImpl) unavailable(dealerID string, reason UnavailableReason, cause error) error {
	attrs := []any{
		slog.String("dealer_id", dealerID),
		slog.String("reason", string(reason)),
	}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	s.logger.Warn("dealer not available for slot lookup", attrs...)

	return &UnavailableError{DealerID: dealerID, Reason: reason, err: cause}
}
