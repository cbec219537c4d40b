//go:build unit || e2e

package builder

import (
	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/pkg/ptr"
)

type DealerBuilder struct {
	ID        string
	Name      string
	Address   dealer.Address
	GeoPoint  dealer.GeoPoint
	Engine    *dealer.Engine
	Installer bool
	Distance  float64
	FreeSlots []appointment.RawInterval
}

func NewDealerBuilder() *DealerBuilder {
	return &DealerBuilder{
		ID:   "0001234567",
		Name: "Reifen Müller",
		Address: dealer.Address{
			Street:      "Hauptstraße",
			HouseNumber: "12",
			ZipCode:     "10115",
			City:        "Berlin",
			Country:     "DE",
		},
		GeoPoint:  dealer.GeoPoint{Latitude: 52.52, Longitude: 13.405},
		Engine:    ptr.To(dealer.EngineZeitmechanik),
		Installer: true,
		Distance:  3.2,
		FreeSlots: []appointment.RawInterval{
			{Start: "2025-03-10T08:00:00.000Z", End: "2025-03-10T09:00:00.000Z"},
			{Start: "2025-03-10T09:00:00.000Z", End: "2025-03-10T10:00:00.000Z"},
		},
	}
}

func (b *DealerBuilder) With(mutate func(*DealerBuilder)) *DealerBuilder {
	mutate(b)
	return b
}

func (b *DealerBuilder) WithID(id string) *DealerBuilder {
	b.ID = id
	return b
}

func (b *DealerBuilder) WithEngine(engine dealer.Engine) *DealerBuilder {
	b.Engine = &engine
	return b
}

func (b *DealerBuilder) WithoutEngine() *DealerBuilder {
	b.Engine = nil
	return b
}

func (b *DealerBuilder) WithDistance(distance float64) *DealerBuilder {
	b.Distance = distance
	return b
}

func (b *DealerBuilder) WithFreeSlots(slots ...appointment.RawInterval) *DealerBuilder {
	b.FreeSlots = slots
	return b
}

// Build methods
func (b *DealerBuilder) BuildRecord() *dealer.Record {
	return &dealer.Record{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		GeoPoint:  b.GeoPoint,
		Engine:    b.Engine,
		Installer: b.Installer,
	}
}

func (b *DealerBuilder) BuildWithDistance() dealer.WithDistance {
	return dealer.WithDistance{Dealer: *b.BuildRecord(), Distance: b.Distance}
}

func (b *DealerBuilder) BuildAvailability() appointment.DealerAvailability {
	return appointment.DealerAvailability{DealerID: b.ID, FreeSlots: b.FreeSlots}
}

func LocationResultOf(dealers ...*DealerBuilder) *dealer.LocationResult {
	found := make([]dealer.WithDistance, 0, len(dealers))
	for _, d := range dealers {
		found = append(found, d.BuildWithDistance())
	}
	return &dealer.LocationResult{Dealers: found}
}
