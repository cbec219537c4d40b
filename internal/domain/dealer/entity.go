package dealer

// Engine identifies the booking engine a dealer is wired to, as reported by
// the dealer service.
type Engine string

const (
	EngineZeitmechanik Engine = "ZEITMECHANIK"
	EngineTimeblockr   Engine = "TIMEBLOCKR"
)

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Address struct {
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Record is a dealer's identity and capability metadata. A nil Engine means
// the dealer cannot be booked through any engine.
type Record struct {
	ID        string   `json:"agencyId"`
	Name      string   `json:"name"`
	Address   Address  `json:"address"`
	GeoPoint  GeoPoint `json:"geoPoint"`
	Engine    *Engine  `json:"appointmentEngine,omitempty"`
	Installer bool     `json:"installer"`
}

func (r *Record) HasEngine() bool {
	return r.Engine != nil && *r.Engine != ""
}

// Bookable reports whether appointments can be created at this dealer.
func (r *Record) Bookable() bool {
	return r.HasEngine() && r.Installer
}

// WithDistance is a Record found by a location search.
type WithDistance struct {
	Dealer   Record  `json:"dealer"`
	Distance float64 `json:"distance"`
}
