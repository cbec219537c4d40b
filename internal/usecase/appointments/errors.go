package appointments

import (
	"errors"
	"net/http"

	"appointment-gateway/internal/pkg/errs"
)

var (
	ErrCustomerRequired  = errors.New("customer with id is required")
	ErrDealerNotBookable = errors.New("dealer is not available")
)

// RemoteError carries an upstream failure to the caller unchanged.
type RemoteError struct {
	Status  int
	Message string
	err     error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.err
}

type statusCarrier interface {
	HTTPStatus() int
	PublicMessage() string
}

func asRemote(err error) *RemoteError {
	var remote *RemoteError
	if errs.As(err, &remote) {
		return remote
	}
	var carrier statusCarrier
	if errs.As(err, &carrier) {
		return &RemoteError{Status: carrier.HTTPStatus(), Message: carrier.PublicMessage(), err: err}
	}
	return &RemoteError{
		Status:  http.StatusBadGateway,
		Message: err.Error(),
		err:     errs.Mark(err, errs.ErrUpstreamFailure),
	}
}
