//go:build unit

package appointment_test

import (
	"testing"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/pkg/errs"
	"appointment-gateway/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlots(t *testing.T) {
	cases := []struct {
		name      string
		intervals []appointment.RawInterval
		want      []appointment.TimeSlot
	}{
		{
			name: "UTC with milliseconds",
			intervals: []appointment.RawInterval{
				{Start: "2025-03-10T08:00:00.000Z", End: "2025-03-10T09:30:00.000Z"},
			},
			want: []appointment.TimeSlot{{Date: "2025-03-10", StartTime: "08:00:00", EndTime: "09:30:00"}},
		},
		{
			name: "offset is kept, not converted",
			intervals: []appointment.RawInterval{
				{Start: "2025-03-10T23:30:00+01:00", End: "2025-03-11T00:30:00+01:00"},
			},
			want: []appointment.TimeSlot{{Date: "2025-03-10", StartTime: "23:30:00", EndTime: "00:30:00"}},
		},
		{
			name: "local timestamps without zone",
			intervals: []appointment.RawInterval{
				{Start: "2025-03-10T08:00:00", End: "2025-03-10T08:45"},
			},
			want: []appointment.TimeSlot{{Date: "2025-03-10", StartTime: "08:00:00", EndTime: "08:45:00"}},
		},
		{
			name: "engine local timestamps",
			intervals: []appointment.RawInterval{
				{Start: "2018-08-24T16:15:00", End: "2018-08-24T16:30:00"},
			},
			want: []appointment.TimeSlot{{Date: "2018-08-24", StartTime: "16:15:00", EndTime: "16:30:00"}},
		},
		{
			name: "offset without colon",
			intervals: []appointment.RawInterval{
				{Start: "2018-08-24T16:15:00+0200", End: "2018-08-24T16:30:00.250-0130"},
			},
			want: []appointment.TimeSlot{{Date: "2018-08-24", StartTime: "16:15:00", EndTime: "16:30:00"}},
		},
		{
			name: "hour-only offset",
			intervals: []appointment.RawInterval{
				{Start: "2018-08-24T16:15:00+02", End: "2018-08-24T16:30:00.5-05"},
			},
			want: []appointment.TimeSlot{{Date: "2018-08-24", StartTime: "16:15:00", EndTime: "16:30:00"}},
		},
		{
			name: "space separator",
			intervals: []appointment.RawInterval{
				{Start: "2018-08-24 16:15:00", End: "2018-08-24 16:30:00+02:00"},
			},
			want: []appointment.TimeSlot{{Date: "2018-08-24", StartTime: "16:15:00", EndTime: "16:30:00"}},
		},
		{
			name: "basic notation",
			intervals: []appointment.RawInterval{
				{Start: "20180824T161500", End: "20180824T163000+0200"},
			},
			want: []appointment.TimeSlot{{Date: "2018-08-24", StartTime: "16:15:00", EndTime: "16:30:00"}},
		},
		{
			name: "basic time with extended date",
			intervals: []appointment.RawInterval{
				{Start: "2018-08-24T1615", End: "2018-08-24T163000Z"},
			},
			want: []appointment.TimeSlot{{Date: "2018-08-24", StartTime: "16:15:00", EndTime: "16:30:00"}},
		},
		{
			name: "order is preserved",
			intervals: []appointment.RawInterval{
				{Start: "2025-03-11T10:00:00Z", End: "2025-03-11T11:00:00Z"},
				{Start: "2025-03-10T10:00:00Z", End: "2025-03-10T11:00:00Z"},
			},
			want: []appointment.TimeSlot{
				{Date: "2025-03-11", StartTime: "10:00:00", EndTime: "11:00:00"},
				{Date: "2025-03-10", StartTime: "10:00:00", EndTime: "11:00:00"},
			},
		},
		{
			name: "no intervals",
			want: []appointment.TimeSlot{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := appointment.NormalizeSlots(tc.intervals)
			require.NoError(t, err)
			require.NotNil(t, got)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("TimeSlot mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("malformed timestamp is rejected", func(t *testing.T) {
		for _, iv := range []appointment.RawInterval{
			{Start: "10.03.2025 08:00", End: "2025-03-10T09:00:00Z"},
			{Start: "2025-03-10T08:00:00Z", End: ""},
		} {
			_, err := appointment.NormalizeSlots([]appointment.RawInterval{iv})
			assert.True(t, errs.Is(err, appointment.ErrInvalidTimestamp), "interval %+v", iv)
		}
	})
}

func TestProviderFor(t *testing.T) {
	cases := []struct {
		name   string
		engine *dealer.Engine
		want   appointment.Provider
	}{
		{name: "zeitmechanik", engine: ptr.To(dealer.EngineZeitmechanik), want: appointment.ProviderZeitmechanik},
		{name: "timeblockr", engine: ptr.To(dealer.EngineTimeblockr), want: appointment.ProviderTimeblockr},
		{name: "unknown engine falls back", engine: ptr.To(dealer.Engine("SOMETHING_ELSE")), want: appointment.DefaultProvider},
		{name: "missing engine falls back", engine: nil, want: appointment.DefaultProvider},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, appointment.ProviderFor(tc.engine))
		})
	}
}
