package services

import (
	"errors"
	"fmt"

	"github.com/harshitha-prabhu/quizmaker-app/internal/stores"
)

// Error taxonomy surfaced to handlers. Storage failures are anything that
// does not match one of these sentinels and are propagated untouched.
var (
	// ErrNotFound: the referenced quiz/question/attempt does not exist or
	// the quiz is soft-deleted.
	ErrNotFound = stores.ErrNotFound

	// ErrAccessDenied: the requester is not the resource owner.
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadySubmitted: the attempt reached its terminal state before
	// this submission; the stored score is unchanged.
	ErrAlreadySubmitted = errors.New("attempt already submitted")

	// ErrValidation: the input violates a structural invariant owned by the
	// core (question count, choice count, correct-choice requirement).
	ErrValidation = errors.New("invalid input")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
