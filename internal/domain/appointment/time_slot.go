package appointment

import (
	"time"

	"appointment-gateway/internal/pkg/errs"
)

const (
	DateFormat = "2006-01-02"
	HourFormat = "15:04:05"
)

var ErrInvalidTimestamp = errs.New("invalid ISO-8601 timestamp")

// isoLayouts covers the ISO-8601 forms the engine may send: extended and basic
// notation, T or space separator, optional seconds, Z or +hh:mm/+hhmm/+hh
// offsets. Fractional seconds need no layout of their own, time.Parse accepts
// them after any seconds field.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	zones := []string{"Z07:00", "Z0700", "Z07", ""}
	extended := []string{"15:04:05", "15:04", "150405", "1504", "15"}
	basic := []string{"150405", "1504", "15"}

	var layouts []string
	for _, sep := range []string{"T", " "} {
		for _, clock := range extended {
			for _, zone := range zones {
				layouts = append(layouts, DateFormat+sep+clock+zone)
			}
		}
	}
	for _, clock := range basic {
		for _, zone := range []string{"Z0700", "Z07", ""} {
			layouts = append(layouts, "20060102T"+clock+zone)
		}
	}
	return append(layouts, DateFormat, "20060102")
}

type TimeSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// NormalizeSlots splits engine intervals into date and wall-clock parts.
// No timezone conversion happens: an offset in the input is kept, so the
// printed time is the one written in the timestamp. The date comes from the
// start only.
func NormalizeSlots(intervals []RawInterval) ([]TimeSlot, error) {
	slots := make([]TimeSlot, 0, len(intervals))
	for _, iv := range intervals {
		start, err := parseISO(iv.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseISO(iv.End)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{
			Date:      start.Format(DateFormat),
			StartTime: start.Format(HourFormat),
			EndTime:   end.Format(HourFormat),
		})
	}
	return slots, nil
}

func parseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.Mark(errs.Newf("cannot parse %q", s), ErrInvalidTimestamp)
}
