package adapter

import "errors"

var (
	// ErrUnavailable marks a transport failure: the request never produced an
	// HTTP response (connection refused, DNS failure, timeout). Always
	// retriable.
	ErrUnavailable = errors.New("remote unavailable")

	// ErrServerFault marks a 5xx response. Retriable: the request was valid
	// but the server could not process it right now.
	ErrServerFault = errors.New("remote server fault")

	// ErrClientFault marks a 4xx response. Permanent: retrying the same
	// request will fail the same way.
	ErrClientFault = errors.New("remote client fault")
)

// Transient reports whether err is worth retrying later: transport failures
// and server faults are, client faults are not.
func Transient(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrServerFault)
}
