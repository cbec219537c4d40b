package infra

import (
	"log/slog"
	"net/http"

	"appointment-gateway/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError describes a failed call to a remote collaborator. Status is
// the remote HTTP status when one was received.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int
	msg    string
	err    error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

// HTTPStatus is the status a caller of this service should see.
func (e UpstreamError) HTTPStatus() int {
	switch {
	case e.Status >= 400 && e.Status < 600:
		return e.Status
	case e.Kind == KindNotFound:
		return http.StatusNotFound
	case e.Kind == KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (e UpstreamError) PublicMessage() string {
	return e.msg
}

func NewUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Upstream error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	if kind == KindNotFound {
		err = errs.Mark(err, errs.ErrNotFound)
	} else {
		err = errs.Mark(err, errs.ErrUpstreamFailure)
	}

	return UpstreamError{Kind: kind, Status: status, msg: msg, err: err}
}

// KindForStatus classifies a non-2xx response.
func KindForStatus(status int) UpstreamErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindBadRequest
	default:
		return KindUpstreamFailure
	}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusOf returns the remote status carried by err, or 0.
func StatusOf(err error) int {
	var e UpstreamError
	if errs.As(err, &e) {
		return e.Status
	}
	return 0
}

const (
	KindNotFound        UpstreamErrorKind = "NOT_FOUND"
	KindBadRequest      UpstreamErrorKind = "BAD_REQUEST"
	KindUpstreamFailure UpstreamErrorKind = "UPSTREAM_FAILURE"
	KindBadResponse     UpstreamErrorKind = "BAD_RESPONSE"
	KindTransport       UpstreamErrorKind = "TRANSPORT"
)
