package stores

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist or, for
	// quizzes, has been soft-deleted.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyFinalized is returned by AttemptStore.Finalize when the
	// conditional update matched no row because the attempt was already
	// submitted. At most one finalize per attempt can ever succeed.
	ErrAlreadyFinalized = errors.New("attempt already finalized")
)
