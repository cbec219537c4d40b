//go:build unit || e2e

package builder

import (
	"appointment-gateway/internal/domain/appointment"
	reqdto "appointment-gateway/internal/handler/dto/request"
)

type AppointmentBuilder struct {
	AppointmentID         string
	ProviderAppointmentID string
	Provider              appointment.Provider
	DealerID              string
	OrderID               string
	AppointmentDate       string
	Status                string
	Locale                string
	LicencePlate          string
	Services              []string
	Customer              appointment.Customer
	Vehicle               appointment.Vehicle
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		AppointmentID:         "apt-1001",
		ProviderAppointmentID: "zm-778899",
		Provider:              appointment.ProviderZeitmechanik,
		DealerID:              "0001234567",
		OrderID:               "order-42",
		AppointmentDate:       "2025-03-10T08:00:00.000Z",
		Status:                "BOOKED",
		Locale:                "de-DE",
		LicencePlate:          "B-GY 2025",
		Services:              []string{"TYRE_CHANGE"},
		Customer: appointment.Customer{
			ID:        "auth0|5f1c",
			FirstName: "Erika",
			LastName:  "Mustermann",
			Email:     "erika@example.com",
			PhoneNumbers: []appointment.PhoneNumber{
				{Type: "mobile", Phone: "+49 151 000000"},
			},
		},
		Vehicle: appointment.Vehicle{Manufacturer: "VW", Model: "Golf", LicencePlate: "B-GY 2025"},
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildEngine() *appointment.Appointment {
	customer := b.Customer
	vehicle := b.Vehicle
	return &appointment.Appointment{
		AppointmentID:         b.AppointmentID,
		ProviderAppointmentID: b.ProviderAppointmentID,
		AppointmentProvider:   b.Provider,
		DealerID:              b.DealerID,
		OrderID:               b.OrderID,
		AppointmentDate:       b.AppointmentDate,
		Status:                b.Status,
		Locale:                b.Locale,
		LicencePlate:          b.LicencePlate,
		Services:              b.Services,
		Customer:              &customer,
		Vehicle:               &vehicle,
	}
}

func (b *AppointmentBuilder) BuildClient() *appointment.ClientAppointment {
	customer := b.Customer
	vehicle := b.Vehicle
	return &appointment.ClientAppointment{
		AppointmentID:   b.AppointmentID,
		DealerID:        b.DealerID,
		OrderID:         b.OrderID,
		AppointmentDate: b.AppointmentDate,
		Status:          b.Status,
		Locale:          b.Locale,
		LicencePlate:    b.LicencePlate,
		Services:        b.Services,
		Customer:        &customer,
		Vehicle:         &vehicle,
	}
}

func (b *AppointmentBuilder) BuildBooking() appointment.Booking {
	customer := b.Customer
	vehicle := b.Vehicle
	return appointment.Booking{
		DealerID:        b.DealerID,
		AppointmentDate: b.AppointmentDate,
		OrderID:         b.OrderID,
		Locale:          b.Locale,
		LicencePlate:    b.LicencePlate,
		Services:        b.Services,
		Customer:        &customer,
		Vehicle:         &vehicle,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	customer := b.Customer
	vehicle := b.Vehicle
	return reqdto.CreateAppointmentRequest{
		DealerID:        b.DealerID,
		AppointmentDate: b.AppointmentDate,
		OrderID:         b.OrderID,
		Locale:          b.Locale,
		LicencePlate:    b.LicencePlate,
		Services:        b.Services,
		Customer:        &customer,
		Vehicle:         &vehicle,
	}
}
