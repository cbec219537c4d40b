package slots

import (
	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/pkg/errs"
)

// joinAvailability keeps the engine's response order.
func joinAvailability(candidates map[string]dealer.WithDistance, availability []appointment.DealerAvailability) ([]*DealerSlots, error) {
	joined := make([]*DealerSlots, 0, len(availability))
	for _, entry := range availability {
		found, ok := candidates[entry.DealerID]
		if !ok {
			return nil, errs.Mark(errs.Newf("engine returned dealer %q", entry.DealerID), ErrUnknownDealer)
		}

		timeSlots, err := appointment.NormalizeSlots(entry.FreeSlots)
		if err != nil {
			return nil, errs.Wrapf(err, "failed to normalize slots of dealer %s", entry.DealerID)
		}

		distance := found.Distance
		joined = append(joined, newDealerSlots(entry.DealerID, &found.Dealer, timeSlots, &distance))
	}
	return joined, nil
}

func newDealerSlots(dealerID string, record *dealer.Record, timeSlots []appointment.TimeSlot, distance *float64) *DealerSlots {
	return &DealerSlots{
		DealerID:   dealerID,
		DealerName: record.Name,
		Address:    record.Address,
		GeoPoint:   record.GeoPoint,
		TimeSlots:  timeSlots,
		Distance:   distance,
	}
}
