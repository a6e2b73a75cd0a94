package model

import (
	"context"

	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
)

// MainchainDataSource is the capability for querying the local observer's
// view of the mainchain. A nil block with a nil error means "not found";
// a non-nil error means the query itself failed and should be treated as a
// transient infrastructure issue.
//
// A single MainchainDataSource instance is shared by all concurrent import
// calls, so implementations must be safe for concurrent use. Queries must
// honor context cancellation promptly.
type MainchainDataSource interface {
	// GetStableBlock returns the mainchain block with the given hash if it
	// exists and is stable relative to referenceTimestamp.
	GetStableBlock(ctx context.Context, hash *externalapi.McBlockHash,
		referenceTimestamp externalapi.Timestamp) (*externalapi.MainchainBlock, error)

	// GetLatestStableBlock returns the latest mainchain block that is stable
	// relative to referenceTimestamp.
	GetLatestStableBlock(ctx context.Context,
		referenceTimestamp externalapi.Timestamp) (*externalapi.MainchainBlock, error)

	// GetBlockByHash returns the mainchain block with the given hash,
	// stable or not.
	GetBlockByHash(ctx context.Context, hash *externalapi.McBlockHash) (*externalapi.MainchainBlock, error)

	// GetTip returns the most recent mainchain block the local observer
	// knows about.
	GetTip(ctx context.Context) (*externalapi.MainchainBlock, error)
}
