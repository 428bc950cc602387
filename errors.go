package paperbloom

import (
	"errors"
	"fmt"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/savequeue"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// ErrNotFinalizable is returned by Finalize when the checkout gate fails:
// fewer than twelve cards, an incomplete card, or missing contact info.
var ErrNotFinalizable = errors.New("collection is not ready to finalize")

// ErrUnknownCard is returned by save operations targeting a card id that is
// not part of the session. Local mutations with an unknown id are a silent
// no-op instead; see Session.MutateCard.
var ErrUnknownCard = errors.New("unknown card id")

// ErrNoCollection is returned by operations that need a loaded collection
// before the session has one.
var ErrNoCollection = errors.New("session has no collection loaded")

// ErrBackPressure is returned when sequenced saves are enabled and the
// internal queue is full.
var ErrBackPressure = errors.New("back-pressure (save queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool {
	return errors.Is(err, ErrBackPressure) || errors.Is(err, savequeue.ErrQueueFull)
}

// SaveError reports a failed remote write. The in-memory optimistic value is
// retained and the entity stays dirty; the engine never retries on its own.
type SaveError struct {
	EntityID string
	Err      error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.EntityID, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// LoadError reports a failed cold load from the remote store with no local
// snapshot to fall back on. It is fatal to session initialization.
type LoadError struct {
	CollectionID string
	Err          error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load collection %s: %v", e.CollectionID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsValidation reports whether err stems from an entity field violating an
// invariant.
func IsValidation(err error) bool {
	var ve *types.ValidationError
	return errors.As(err, &ve)
}
