// Package importerrors is the closed error taxonomy of mainchain-hash block
// import verification. Only ErrMalformedHeader and ErrInvalidReference ever
// reach the surrounding pipeline (both reject the block); the transient kinds
// exist so deferral reasons stay structured in logs and tests.
package importerrors

import (
	"fmt"
	"time"

	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific ImportError.
var (
	// ErrMalformedHeader indicates the header cannot yield a mainchain hash
	// or a production slot. Structural, non-retryable: the block is rejected
	// before any mainchain query is issued.
	ErrMalformedHeader = newImportError("ErrMalformedHeader")

	// ErrInvalidReference indicates the referenced mainchain block was
	// confirmed nonexistent against a fresh local tip. The block is rejected
	// and the sender is penalized upstream.
	ErrInvalidReference = newImportError("ErrInvalidReference")

	// ErrTransientQueryFailure indicates a mainchain query failed. The
	// import is deferred; this never surfaces as a hard failure.
	ErrTransientQueryFailure = newImportError("ErrTransientQueryFailure")

	// ErrLocalViewUnhealthy indicates the local observer's tip is missing or
	// stale, so nonexistence of the reference cannot be trusted. The import
	// is deferred; this never surfaces as a hard failure.
	ErrLocalViewUnhealthy = newImportError("ErrLocalViewUnhealthy")
)

// ImportError identifies an error in mainchain-hash verification of a block
// being imported. It is used to signal that the block itself (not the local
// infrastructure) failed verification, or to classify why verification could
// not be concluded yet.
type ImportError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e ImportError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e ImportError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e ImportError) Cause() error {
	return e.inner
}

// Is lets errors.Is match any ImportError, with or without a payload, against
// its bare identifying constant.
func (e ImportError) Is(target error) bool {
	t, ok := target.(ImportError)
	return ok && t.message == e.message && t.inner == nil
}

func newImportError(message string) ImportError {
	return ImportError{message: message, inner: nil}
}

// ErrMissingDigest indicates a header digest lacks (or duplicates) a required
// digest item.
type ErrMissingDigest struct {
	ID externalapi.DigestID
}

func (e ErrMissingDigest) Error() string {
	return fmt.Sprintf("no unique %s digest item in header", e.ID)
}

// NewErrMissingDigest creates a new ErrMissingDigest error wrapped in ErrMalformedHeader
func NewErrMissingDigest(id externalapi.DigestID) error {
	return errors.WithStack(ImportError{
		message: "ErrMalformedHeader",
		inner:   ErrMissingDigest{id},
	})
}

// ErrBadDigestPayload indicates a digest item carries a payload of the wrong
// size.
type ErrBadDigestPayload struct {
	ID           externalapi.DigestID
	ExpectedSize int
	ActualSize   int
}

func (e ErrBadDigestPayload) Error() string {
	return fmt.Sprintf("%s digest payload is %d bytes, expected %d", e.ID, e.ActualSize, e.ExpectedSize)
}

// NewErrBadDigestPayload creates a new ErrBadDigestPayload error wrapped in ErrMalformedHeader
func NewErrBadDigestPayload(id externalapi.DigestID, expectedSize, actualSize int) error {
	return errors.WithStack(ImportError{
		message: "ErrMalformedHeader",
		inner:   ErrBadDigestPayload{id, expectedSize, actualSize},
	})
}

// ErrReferenceNotFound indicates the referenced mainchain block does not
// exist in a local view that is fresh enough to be trusted.
type ErrReferenceNotFound struct {
	Hash      *externalapi.McBlockHash
	TipAge    time.Duration
	Threshold time.Duration
}

func (e ErrReferenceNotFound) Error() string {
	return fmt.Sprintf("mainchain block %s does not exist (tip age: %s, staleness threshold: %s)",
		e.Hash, e.TipAge, e.Threshold)
}

// NewErrReferenceNotFound creates a new ErrReferenceNotFound error wrapped in ErrInvalidReference
func NewErrReferenceNotFound(hash *externalapi.McBlockHash, tipAge, threshold time.Duration) error {
	return errors.WithStack(ImportError{
		message: "ErrInvalidReference",
		inner:   ErrReferenceNotFound{hash, tipAge, threshold},
	})
}

// NewErrTransientQueryFailure wraps a failed mainchain query in
// ErrTransientQueryFailure
func NewErrTransientQueryFailure(inner error) error {
	return errors.WithStack(ImportError{
		message: "ErrTransientQueryFailure",
		inner:   inner,
	})
}

// NewErrLocalViewUnhealthy wraps the reason the local view cannot be trusted
// in ErrLocalViewUnhealthy
func NewErrLocalViewUnhealthy(inner error) error {
	return errors.WithStack(ImportError{
		message: "ErrLocalViewUnhealthy",
		inner:   inner,
	})
}
