package request

import (
	"strings"

	"appointment-gateway/internal/usecase/slots"
)

// SlotsWindowRequest is shared by the location and the by-dealer lookup.
type SlotsWindowRequest struct {
	Channel      *string  `form:"channel"`
	Quantity     *int     `form:"quantity" binding:"omitnil,min=1"`
	NumberOfDays *int     `form:"numberOfDays" binding:"omitnil,min=1"`
	Services     []string `form:"services"`
	FromDate     string   `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
}

type FreeSlotsRequest struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	Distance  *float64 `form:"distance" binding:"omitnil,min=0"`
	Country   []string `form:"country"`
	SlotsWindowRequest
}

func (r SlotsWindowRequest) ToQuery() slots.SlotsQuery {
	return slots.SlotsQuery{
		Channel:      r.Channel,
		Quantity:     r.Quantity,
		FromDate:     r.FromDate,
		NumberOfDays: r.NumberOfDays,
		Services:     splitList(r.Services),
	}
}

func (r FreeSlotsRequest) ToQuery() slots.FreeSlotsQuery {
	return slots.FreeSlotsQuery{
		Latitude:   *r.Latitude,
		Longitude:  *r.Longitude,
		Distance:   r.Distance,
		Country:    splitList(r.Country),
		SlotsQuery: r.SlotsWindowRequest.ToQuery(),
	}
}

// splitList accepts both repeated keys and comma separated values.
func splitList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
