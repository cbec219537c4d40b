package slots

import (
	"appointment-gateway/internal/pkg/errs"
)

var (
	ErrDealerUnavailable = errs.New("dealer is not available")

	// availability came back for a dealer that was never requested
	ErrUnknownDealer = errs.New("availability for unrequested dealer")
)

type UnavailableReason string

const (
	ReasonUpstreamFailure   UnavailableReason = "UPSTREAM_FAILURE"
	ReasonUnsupportedEngine UnavailableReason = "UNSUPPORTED_ENGINE"
)

// UnavailableError is the single failure of the by-dealer lookup. Callers see
// the same ErrDealerUnavailable for every Reason.
type UnavailableError struct {
	DealerID string
	Reason   UnavailableReason
	err      error
}

func (e *UnavailableError) Error() string {
	msg := "dealer " + e.DealerID + " is not available (" + string(e.Reason) + ")"
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

func (e *UnavailableError) Unwrap() error {
	return e.err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrDealerUnavailable
}
