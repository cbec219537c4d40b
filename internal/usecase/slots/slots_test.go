//go:build unit

package slots_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/pkg/clock"
	"appointment-gateway/internal/pkg/errs"
	"appointment-gateway/internal/pkg/ptr"
	"appointment-gateway/internal/usecase/slots"
	"appointment-gateway/tests/common/builder"
	slotsmock "appointment-gateway/tests/mock/slots"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotsUseCaseTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	mockLocator *slotsmock.MockDealerLocator
	mockEngine  *slotsmock.MockAvailabilityEngine
	clock       *clock.MockClock
	useCase     slots.SlotsUseCase
}

func (s *SlotsUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLocator = slotsmock.NewMockDealerLocator(s.mockCtrl)
	s.mockEngine = slotsmock.NewMockAvailabilityEngine(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.useCase = slots.NewSlotsUseCase(s.mockLocator, s.mockEngine, s.clock, logger)
}

func (s *SlotsUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotsUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SlotsUseCaseTestSuite))
}

func berlinQuery() slots.FreeSlotsQuery {
	return slots.FreeSlotsQuery{
		Latitude:  52.52,
		Longitude: 13.405,
		Distance:  ptr.To(25.0),
		Country:   []string{"DE"},
	}
}

// ================================================================================
// GetFreeSlots
// ================================================================================

func (s *SlotsUseCaseTestSuite) TestGetFreeSlots() {
	s.Run("success: joins engine entries with located dealers in engine order", func() {
		first := builder.NewDealerBuilder().WithID("A").WithDistance(1.5)
		second := builder.NewDealerBuilder().WithID("B").WithEngine(dealer.EngineTimeblockr).WithDistance(4).
			WithFreeSlots(appointment.RawInterval{Start: "2025-03-11T14:00:00Z", End: "2025-03-11T14:30:00Z"})

		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q dealer.LocationQuery) (*dealer.LocationResult, error) {
				s.True(q.InstallerOnly)
				s.Equal(dealer.SearchPageSize, q.PageSize)
				s.Equal([]string{"DE"}, q.Country)
				return builder.LocationResultOf(first, second), nil
			})
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Len(2)).
			Return([]appointment.DealerAvailability{second.BuildAvailability(), first.BuildAvailability()}, nil)

		got, err := s.useCase.GetFreeSlots(s.ctx, berlinQuery())

		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal("B", got[0].DealerID)
		s.Equal("A", got[1].DealerID)
		s.Equal(4.0, *got[0].Distance)
		s.Equal([]appointment.TimeSlot{{Date: "2025-03-11", StartTime: "14:00:00", EndTime: "14:30:00"}}, got[0].TimeSlots)
	})

	s.Run("success: builds one availability request per dealer with an engine", func() {
		zm := builder.NewDealerBuilder().WithID("A")
		tb := builder.NewDealerBuilder().WithID("B").WithEngine(dealer.EngineTimeblockr)
		none := builder.NewDealerBuilder().WithID("C").WithoutEngine()

		query := berlinQuery()
		query.Services = []string{"TYRE_CHANGE"}
		query.Quantity = ptr.To(4)

		want := []appointment.AvailabilityRequest{
			{DealerID: "A", Provider: appointment.ProviderZeitmechanik, Quantity: ptr.To(4), FromDate: "2025-03-09", WindowDays: 7, Services: []string{"TYRE_CHANGE"}},
			{DealerID: "B", Provider: appointment.ProviderTimeblockr, Quantity: ptr.To(4), FromDate: "2025-03-09", WindowDays: 7, Services: []string{"TYRE_CHANGE"}},
		}

		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(builder.LocationResultOf(zm, tb, none), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []appointment.AvailabilityRequest) ([]appointment.DealerAvailability, error) {
				if diff := cmp.Diff(want, batch); diff != "" {
					s.Failf("unexpected batch", "(-want +got):\n%s", diff)
				}
				return nil, nil
			})

		got, err := s.useCase.GetFreeSlots(s.ctx, query)

		s.Require().NoError(err)
		s.Empty(got)
		s.NotNil(got)
	})

	s.Run("success: explicit window is passed through", func() {
		query := berlinQuery()
		query.FromDate = "2025-04-01"
		query.NumberOfDays = ptr.To(14)

		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(builder.LocationResultOf(builder.NewDealerBuilder()), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []appointment.AvailabilityRequest) ([]appointment.DealerAvailability, error) {
				s.Equal("2025-04-01", batch[0].FromDate)
				s.Equal(14, batch[0].WindowDays)
				s.NotNil(batch[0].Services)
				return []appointment.DealerAvailability{}, nil
			})

		got, err := s.useCase.GetFreeSlots(s.ctx, query)

		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("success: no dealer with an engine skips the engine call", func() {
		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(builder.LocationResultOf(builder.NewDealerBuilder().WithoutEngine()), nil)

		got, err := s.useCase.GetFreeSlots(s.ctx, berlinQuery())

		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("success: zero distance is kept", func() {
		d := builder.NewDealerBuilder().WithDistance(0)
		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(builder.LocationResultOf(d), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
			Return([]appointment.DealerAvailability{d.BuildAvailability()}, nil)

		got, err := s.useCase.GetFreeSlots(s.ctx, berlinQuery())

		s.Require().NoError(err)
		s.Require().NotNil(got[0].Distance)
		s.Zero(*got[0].Distance)
	})

	s.Run("error: dealer search failure propagates", func() {
		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUpstreamFailure)

		_, err := s.useCase.GetFreeSlots(s.ctx, berlinQuery())

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrUpstreamFailure))
	})

	s.Run("error: engine failure propagates", func() {
		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(builder.LocationResultOf(builder.NewDealerBuilder()), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUpstreamFailure)

		_, err := s.useCase.GetFreeSlots(s.ctx, berlinQuery())

		s.True(errs.Is(err, errs.ErrUpstreamFailure))
	})

	s.Run("error: engine entry for an unrequested dealer", func() {
		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(builder.LocationResultOf(builder.NewDealerBuilder().WithID("A")), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
			Return([]appointment.DealerAvailability{builder.NewDealerBuilder().WithID("Z").BuildAvailability()}, nil)

		_, err := s.useCase.GetFreeSlots(s.ctx, berlinQuery())

		s.True(errs.Is(err, slots.ErrUnknownDealer))
	})

	s.Run("error: malformed timestamp", func() {
		d := builder.NewDealerBuilder().WithFreeSlots(appointment.RawInterval{Start: "tomorrow", End: "later"})
		s.mockLocator.EXPECT().FindByLocation(gomock.Any(), gomock.Any()).
			Return(builder.LocationResultOf(d), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
			Return([]appointment.DealerAvailability{d.BuildAvailability()}, nil)

		_, err := s.useCase.GetFreeSlots(s.ctx, berlinQuery())

		s.True(errs.Is(err, appointment.ErrInvalidTimestamp))
	})
}

// ================================================================================
// GetFreeSlotsByDealer
// ================================================================================

func (s *SlotsUseCaseTestSuite) TestGetFreeSlotsByDealer() {
	s.Run("success: returns the first engine entry without distance", func() {
		d := builder.NewDealerBuilder()
		s.mockLocator.EXPECT().GetByID(gomock.Any(), "0001234567", dealer.LookupOptions{InstallerOnly: true}).
			Return(d.BuildRecord(), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Len(1)).
			Return([]appointment.DealerAvailability{d.BuildAvailability()}, nil)

		got, err := s.useCase.GetFreeSlotsByDealer(s.ctx, "0001234567", slots.SlotsQuery{})

		s.Require().NoError(err)
		want := &slots.DealerSlots{
			DealerID:   "0001234567",
			DealerName: d.Name,
			Address:    d.Address,
			GeoPoint:   d.GeoPoint,
			TimeSlots: []appointment.TimeSlot{
				{Date: "2025-03-10", StartTime: "08:00:00", EndTime: "09:00:00"},
				{Date: "2025-03-10", StartTime: "09:00:00", EndTime: "10:00:00"},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.Failf("unexpected dealer slots", "(-want +got):\n%s", diff)
		}
	})

	s.Run("success: engine local timestamps keep their wall-clock time", func() {
		d := builder.NewDealerBuilder().
			WithID("30022307").
			WithFreeSlots(appointment.RawInterval{Start: "2018-08-24T16:15:00", End: "2018-08-24T16:30:00"})
		s.mockLocator.EXPECT().GetByID(gomock.Any(), "30022307", dealer.LookupOptions{InstallerOnly: true}).
			Return(d.BuildRecord(), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Len(1)).
			Return([]appointment.DealerAvailability{d.BuildAvailability()}, nil)

		got, err := s.useCase.GetFreeSlotsByDealer(s.ctx, "30022307", slots.SlotsQuery{})

		s.Require().NoError(err)
		s.Equal("30022307", got.DealerID)
		want := []appointment.TimeSlot{{Date: "2018-08-24", StartTime: "16:15:00", EndTime: "16:30:00"}}
		if diff := cmp.Diff(want, got.TimeSlots); diff != "" {
			s.Failf("unexpected time slots", "(-want +got):\n%s", diff)
		}
	})

	s.Run("success: empty engine response yields no slots", func() {
		s.mockLocator.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(builder.NewDealerBuilder().BuildRecord(), nil)
		s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
			Return([]appointment.DealerAvailability{}, nil)

		got, err := s.useCase.GetFreeSlotsByDealer(s.ctx, "0001234567", slots.SlotsQuery{})

		s.Require().NoError(err)
		s.Empty(got.TimeSlots)
		s.Nil(got.Distance)
	})

	unavailable := []struct {
		name       string
		setup      func()
		wantReason slots.UnavailableReason
	}{
		{
			name: "dealer lookup fails",
			setup: func() {
				s.mockLocator.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errs.ErrNotFound)
			},
			wantReason: slots.ReasonUpstreamFailure,
		},
		{
			name: "engine fails",
			setup: func() {
				s.mockLocator.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(builder.NewDealerBuilder().BuildRecord(), nil)
				s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
					Return(nil, errs.ErrUpstreamFailure)
			},
			wantReason: slots.ReasonUpstreamFailure,
		},
		{
			name: "dealer has no engine",
			setup: func() {
				s.mockLocator.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(builder.NewDealerBuilder().WithoutEngine().BuildRecord(), nil)
				s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
					Return([]appointment.DealerAvailability{}, nil)
			},
			wantReason: slots.ReasonUnsupportedEngine,
		},
		{
			name: "engine returns a malformed timestamp",
			setup: func() {
				d := builder.NewDealerBuilder().WithFreeSlots(appointment.RawInterval{Start: "x", End: "y"})
				s.mockLocator.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(d.BuildRecord(), nil)
				s.mockEngine.EXPECT().FreeSlots(gomock.Any(), gomock.Any()).
					Return([]appointment.DealerAvailability{d.BuildAvailability()}, nil)
			},
			wantReason: slots.ReasonUpstreamFailure,
		},
	}

	for _, tc := range unavailable {
		s.Run("error: "+tc.name, func() {
			tc.setup()

			got, err := s.useCase.GetFreeSlotsByDealer(s.ctx, "0001234567", slots.SlotsQuery{})

			s.Nil(got)
			s.True(errs.Is(err, slots.ErrDealerUnavailable))
			s.True(errs.Is(errs.Wrap(err, "lookup"), slots.ErrDealerUnavailable))
			var unavailableErr *slots.UnavailableError
			s.Require().True(errs.As(err, &unavailableErr))
			s.Equal(tc.wantReason, unavailableErr.Reason)
			s.Equal("0001234567", unavailableErr.DealerID)
		})
	}
}
