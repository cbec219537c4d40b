package response

import (
	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/usecase/slots"
)

type DealerSlotsResponse struct {
	DealerID   string                 `json:"dealerId"`
	DealerName string                 `json:"dealerName"`
	Address    dealer.Address         `json:"address"`
	GeoPoint   dealer.GeoPoint        `json:"geoPoint"`
	TimeSlot   []appointment.TimeSlot `json:"timeSlot"`
	Distance   *float64               `json:"distance,omitempty"`
}

func FromDealerSlots(d *slots.DealerSlots) *DealerSlotsResponse {
	timeSlots := d.TimeSlots
	if timeSlots == nil {
		timeSlots = []appointment.TimeSlot{}
	}
	return &DealerSlotsResponse{
		DealerID:   d.DealerID,
		DealerName: d.DealerName,
		Address:    d.Address,
		GeoPoint:   d.GeoPoint,
		TimeSlot:   timeSlots,
		Distance:   d.Distance,
	}
}

func FromDealerSlotsList(list []*slots.DealerSlots) []*DealerSlotsResponse {
	res := make([]*DealerSlotsResponse, len(list))
	for i, d := range list {
		res[i] = FromDealerSlots(d)
	}
	return res
}
