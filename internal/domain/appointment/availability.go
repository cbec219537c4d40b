package appointment

const DefaultWindowDays = 7

// AvailabilityRequest is one entry of the batched free-slots query.
type AvailabilityRequest struct {
	DealerID   string   `json:"dealerId"`
	Provider   Provider `json:"appointmentProvider"`
	Channel    *string  `json:"channel,omitempty"`
	Quantity   *int     `json:"quantity,omitempty"`
	FromDate   string   `json:"fromDate"`
	WindowDays int      `json:"numberOfDays"`
	Services   []string `json:"services"`
}

// RawInterval is a free slot as the engine reports it.
type RawInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DealerAvailability is returned only for dealers with availability.
type DealerAvailability struct {
	DealerID  string        `json:"dealerId"`
	FreeSlots []RawInterval `json:"freeSlots"`
}
