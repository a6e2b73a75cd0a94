package model

import (
	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
)

// HeaderExtractor pulls the mainchain reference out of an anchor-chain
// header's digest log.
type HeaderExtractor interface {
	// MainchainHash extracts the embedded mainchain block hash.
	MainchainHash(header *externalapi.BlockHeader) (*externalapi.McBlockHash, error)

	// Slot extracts the slot the block was produced in.
	Slot(header *externalapi.BlockHeader) (externalapi.Slot, error)

	// ReferenceTimestamp derives the reference timestamp from the block's
	// production slot and the anchor-chain slot duration.
	ReferenceTimestamp(header *externalapi.BlockHeader) (externalapi.Timestamp, error)
}
