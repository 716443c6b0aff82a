// Package payments wraps the hosted payment processor. The booking
// pipeline treats the processor-side intent as the single source of truth
// for whether a guest actually paid.
package payments

import (
	"context"
	"errors"
)

// IntentStatusSucceeded is the only status the booking reconciler accepts.
const IntentStatusSucceeded = "succeeded"

// ErrIntentNotFound reports that the processor has no intent with the given
// id. Transient processor failures are returned as ordinary errors; callers
// must not treat them as a missing intent.
var ErrIntentNotFound = errors.New("payment intent not found")

// Intent is the processor-side payment authorization: an opaque id, a
// client-usable secret, a lifecycle status and the metadata written at
// creation time (hotelId, userId).
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	Metadata     map[string]string
}

type Provider interface {
	// CreateIntent opens an authorization for amount in minor currency
	// units, tagged with metadata for later ownership verification.
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error)
	// RetrieveIntent fetches an authorization by id.
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
