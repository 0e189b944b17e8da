package service

import "errors"

var (
	// ErrSavedOffline reports that a mutation could not reach the server but
	// was durably stored locally and will be replayed. Callers must render
	// this differently from a failure: the write succeeded.
	ErrSavedOffline = errors.New("saved locally, pending sync")
)
