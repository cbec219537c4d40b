package request

import (
	"appointment-gateway/internal/domain/appointment"
)

type CreateAppointmentRequest struct {
	DealerID        string                `json:"dealerId" binding:"required"`
	ShopIdentifier  string                `json:"shopIdentifier,omitempty"`
	AppointmentDate string                `json:"appointmentDate" binding:"required"`
	OrderID         string                `json:"orderId,omitempty"`
	Locale          string                `json:"locale,omitempty"`
	LicencePlate    string                `json:"licencePlate,omitempty"`
	Services        []string              `json:"services,omitempty"`
	Comment         string                `json:"comment,omitempty"`
	SentByEmail     bool                  `json:"sentByEmail"`
	SentBySMS       bool                  `json:"sentBySMS"`
	Customer        *appointment.Customer `json:"customer" binding:"required"`
	Vehicle         *appointment.Vehicle  `json:"vehicle,omitempty"`
}

func (r CreateAppointmentRequest) ToBooking() appointment.Booking {
	return appointment.Booking{
		DealerID:        r.DealerID,
		ShopIdentifier:  r.ShopIdentifier,
		AppointmentDate: r.AppointmentDate,
		OrderID:         r.OrderID,
		Locale:          r.Locale,
		LicencePlate:    r.LicencePlate,
		Services:        r.Services,
		Comment:         r.Comment,
		SentByEmail:     r.SentByEmail,
		SentBySMS:       r.SentBySMS,
		Customer:        r.Customer,
		Vehicle:         r.Vehicle,
	}
}

type UpdateAppointmentRequest struct {
	AppointmentDate string                `json:"appointmentDate,omitempty"`
	LicencePlate    string                `json:"licencePlate,omitempty"`
	Locale          string                `json:"locale,omitempty"`
	Customer        *appointment.Customer `json:"customer,omitempty"`
}

func (r UpdateAppointmentRequest) ToUpdate(appointmentID string) appointment.Update {
	return appointment.Update{
		AppointmentID:   appointmentID,
		AppointmentDate: r.AppointmentDate,
		LicencePlate:    r.LicencePlate,
		Locale:          r.Locale,
		Customer:        r.Customer,
	}
}

type ProviderSynchRequest struct {
	AppointmentDate string `json:"appointmentDate" binding:"required"`
}

func (r ProviderSynchRequest) ToSynch(providerAppointmentID string) appointment.ProviderSynch {
	return appointment.ProviderSynch{ProviderAppointmentID: providerAppointmentID, AppointmentDate: r.AppointmentDate}
}

type CompleteAppointmentRequest struct {
	Comment string `json:"comment"`
}

type CancelAppointmentQuery struct {
	Comment string `form:"comment"`
}

type DealerIDQuery struct {
	DealerID string `form:"dealerId" binding:"required"`
}

type RangeQuery struct {
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
	Status   string `form:"status"`
}

func (q RangeQuery) ToRange() appointment.Range {
	return appointment.Range{DateFrom: q.FromDate, DateTo: q.ToDate, Status: q.Status}
}

type AppointmentsByDealersQuery struct {
	IDs []string `form:"id" binding:"required,min=1"`
	RangeQuery
}

func (q AppointmentsByDealersQuery) DealerIDs() []string {
	return splitList(q.IDs)
}
