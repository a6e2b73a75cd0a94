package importerrors

import (
	"errors"
	"testing"
	"time"

	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
)

func TestNewErrMissingDigest(t *testing.T) {
	outer := NewErrMissingDigest(externalapi.McHashDigestID)
	expectedOuterErr := "ErrMalformedHeader: no unique mcsh digest item in header"

	inner := &ErrMissingDigest{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrMissingDigest: Outer should contain ErrMissingDigest in it")
	}
	if inner.ID != externalapi.McHashDigestID {
		t.Fatalf("TestNewErrMissingDigest: Expected ID %s, found: %s", externalapi.McHashDigestID, inner.ID)
	}

	if !errors.Is(outer, ErrMalformedHeader) {
		t.Fatal("TestNewErrMissingDigest: Outer should be ErrMalformedHeader")
	}
	if errors.Is(outer, ErrInvalidReference) {
		t.Fatal("TestNewErrMissingDigest: Outer should not be ErrInvalidReference")
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrMissingDigest: Expected %s, found: %s", expectedOuterErr, outer.Error())
	}
}

func TestNewErrBadDigestPayload(t *testing.T) {
	outer := NewErrBadDigestPayload(externalapi.SlotDigestID, 8, 3)
	expectedOuterErr := "ErrMalformedHeader: aura digest payload is 3 bytes, expected 8"

	inner := &ErrBadDigestPayload{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrBadDigestPayload: Outer should contain ErrBadDigestPayload in it")
	}
	if inner.ExpectedSize != 8 || inner.ActualSize != 3 {
		t.Fatalf("TestNewErrBadDigestPayload: Expected sizes (8, 3), found: (%d, %d)",
			inner.ExpectedSize, inner.ActualSize)
	}

	if !errors.Is(outer, ErrMalformedHeader) {
		t.Fatal("TestNewErrBadDigestPayload: Outer should be ErrMalformedHeader")
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrBadDigestPayload: Expected %s, found: %s", expectedOuterErr, outer.Error())
	}
}

func TestNewErrReferenceNotFound(t *testing.T) {
	hash, err := externalapi.NewMcBlockHashFromString(
		"ffffff0000000000000000000000000000000000000000000000000000000000")
	if err != nil {
		t.Fatalf("TestNewErrReferenceNotFound: unexpected error: %s", err)
	}
	outer := NewErrReferenceNotFound(hash, 10*time.Second, time.Hour)
	expectedOuterErr := "ErrInvalidReference: mainchain block " +
		"ffffff0000000000000000000000000000000000000000000000000000000000 does not exist " +
		"(tip age: 10s, staleness threshold: 1h0m0s)"

	inner := &ErrReferenceNotFound{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrReferenceNotFound: Outer should contain ErrReferenceNotFound in it")
	}
	if !inner.Hash.Equal(hash) {
		t.Fatalf("TestNewErrReferenceNotFound: Expected hash %s, found: %s", hash, inner.Hash)
	}

	if !errors.Is(outer, ErrInvalidReference) {
		t.Fatal("TestNewErrReferenceNotFound: Outer should be ErrInvalidReference")
	}
	if errors.Is(outer, ErrMalformedHeader) {
		t.Fatal("TestNewErrReferenceNotFound: Outer should not be ErrMalformedHeader")
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrReferenceNotFound: Expected %s, found: %s", expectedOuterErr, outer.Error())
	}
}

func TestTransientErrorClassification(t *testing.T) {
	queryErr := NewErrTransientQueryFailure(errors.New("connection refused"))
	if !errors.Is(queryErr, ErrTransientQueryFailure) {
		t.Fatal("TestTransientErrorClassification: query failure should be ErrTransientQueryFailure")
	}
	if errors.Is(queryErr, ErrLocalViewUnhealthy) {
		t.Fatal("TestTransientErrorClassification: query failure should not be ErrLocalViewUnhealthy")
	}

	viewErr := NewErrLocalViewUnhealthy(errors.New("no tip"))
	if !errors.Is(viewErr, ErrLocalViewUnhealthy) {
		t.Fatal("TestTransientErrorClassification: view error should be ErrLocalViewUnhealthy")
	}
	expected := "ErrLocalViewUnhealthy: no tip"
	if viewErr.Error() != expected {
		t.Fatalf("TestTransientErrorClassification: Expected %s, found: %s", expected, viewErr.Error())
	}
}
