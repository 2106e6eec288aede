package broadcaster

import "errors"

var (
	ErrBroadcastFailed = errors.New("broadcast failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrBadRequest      = errors.New("malformed auth request")
)
