package appointment

import "appointment-gateway/internal/domain/dealer"

// Provider is the engine identifier understood by the appointment engine.
type Provider string

const (
	ProviderZeitmechanik Provider = "ZEITMECHANIK"
	ProviderTimeblockr   Provider = "TIMEBLOCKR"

	DefaultProvider = ProviderZeitmechanik
)

// ProviderFor translates a dealer engine into the engine-side provider.
// Unknown or missing engines fall back to DefaultProvider.
func ProviderFor(engine *dealer.Engine) Provider {
	if engine == nil {
		return DefaultProvider
	}
	switch *engine {
	case dealer.EngineZeitmechanik:
		return ProviderZeitmechanik
	case dealer.EngineTimeblockr:
		return ProviderTimeblockr
	default:
		return DefaultProvider
	}
}
