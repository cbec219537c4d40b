package dealer

// SearchPageSize is large enough that a location search never needs
// client-side pagination.
const SearchPageSize = 100000

// GeoQuery is the caller-facing location search input.
type GeoQuery struct {
	Latitude  float64
	Longitude float64
	Distance  *float64
	Country   []string
	Channel   *string
}

// LocationQuery is what the dealer service receives.
type LocationQuery struct {
	GeoQuery
	InstallerOnly bool
	PageSize      int
}

func NewInstallerSearch(q GeoQuery) LocationQuery {
	return LocationQuery{
		GeoQuery:      q,
		InstallerOnly: true,
		PageSize:      SearchPageSize,
	}
}

type LocationResult struct {
	Dealers []WithDistance `json:"dealers"`
}

type LookupOptions struct {
	InstallerOnly bool
}
