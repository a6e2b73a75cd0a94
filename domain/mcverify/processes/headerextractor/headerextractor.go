// Package headerextractor pulls the mainchain reference out of anchor-chain
// headers: the embedded mainchain block hash and the production slot, from
// which the reference timestamp is derived.
package headerextractor

import (
	"encoding/binary"

	"github.com/anchorchain/anchord/domain/mcverify/importerrors"
	"github.com/anchorchain/anchord/domain/mcverify/model"
	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
	"github.com/pkg/errors"
)

const slotPayloadSize = 8

type headerExtractor struct {
	slotDurationMillis uint64
}

// New instantiates a new HeaderExtractor for an anchor chain with the given
// slot duration in milliseconds.
func New(slotDurationMillis uint64) model.HeaderExtractor {
	return &headerExtractor{
		slotDurationMillis: slotDurationMillis,
	}
}

// MainchainHash extracts the embedded mainchain block hash from the header's
// mcsh digest item.
func (he *headerExtractor) MainchainHash(header *externalapi.BlockHeader) (*externalapi.McBlockHash, error) {
	payload, err := uniqueDigestPayload(header, externalapi.McHashDigestID)
	if err != nil {
		return nil, err
	}
	if len(payload) != externalapi.McBlockHashSize {
		return nil, importerrors.NewErrBadDigestPayload(
			externalapi.McHashDigestID, externalapi.McBlockHashSize, len(payload))
	}
	return externalapi.NewMcBlockHashFromByteSlice(payload)
}

// Slot extracts the block's production slot from the header's pre-runtime
// digest item.
func (he *headerExtractor) Slot(header *externalapi.BlockHeader) (externalapi.Slot, error) {
	payload, err := uniqueDigestPayload(header, externalapi.SlotDigestID)
	if err != nil {
		return 0, err
	}
	if len(payload) != slotPayloadSize {
		return 0, importerrors.NewErrBadDigestPayload(
			externalapi.SlotDigestID, slotPayloadSize, len(payload))
	}
	return externalapi.Slot(binary.LittleEndian.Uint64(payload)), nil
}

// ReferenceTimestamp derives the reference timestamp of the block:
// slot index times the anchor-chain slot duration.
func (he *headerExtractor) ReferenceTimestamp(header *externalapi.BlockHeader) (externalapi.Timestamp, error) {
	slot, err := he.Slot(header)
	if err != nil {
		return 0, err
	}
	return externalapi.Timestamp(uint64(slot) * he.slotDurationMillis), nil
}

// uniqueDigestPayload returns the payload of the digest item with the given
// ID. A header without exactly one such item is malformed.
func uniqueDigestPayload(header *externalapi.BlockHeader, id externalapi.DigestID) ([]byte, error) {
	if header == nil {
		return nil, errors.Wrap(importerrors.ErrMalformedHeader, "header is nil")
	}

	var payload []byte
	found := false
	for _, item := range header.Digest {
		if item.ID != id {
			continue
		}
		if found {
			return nil, importerrors.NewErrMissingDigest(id)
		}
		payload = item.Payload
		found = true
	}
	if !found {
		return nil, importerrors.NewErrMissingDigest(id)
	}
	return payload, nil
}
