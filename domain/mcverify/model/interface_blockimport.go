package model

import (
	"context"

	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
)

// BlockImport is the block-import-shaped contract this layer both consumes
// (the wrapped inner import stage) and exposes (the verifying wrapper given
// to the surrounding pipeline).
type BlockImport interface {
	// CheckBlock performs a pre-import check of the block.
	CheckBlock(ctx context.Context, params *externalapi.CheckParams) (externalapi.ImportResult, error)

	// ImportBlock imports the block.
	ImportBlock(ctx context.Context, params *externalapi.ImportParams) (externalapi.ImportResult, error)
}
