package externalapi

// ImportParams are the parameters of a single block-import attempt handed to
// a BlockImport stage by the surrounding pipeline.
type ImportParams struct {
	Header *BlockHeader

	// RawBlock is the encoded block body. It is carried through unchanged;
	// this layer never interprets it.
	RawBlock []byte

	// StateOnly marks an import that carries state instead of a block body
	// (e.g. warp sync).
	StateOnly bool

	// SkipExecutionChecks marks an import whose state action skips execution
	// checks (e.g. fast sync).
	SkipExecutionChecks bool
}

// SkipsStateVerification returns whether this import request carries no state
// execution to verify, in which case mainchain-hash verification does not
// apply to it.
func (ip *ImportParams) SkipsStateVerification() bool {
	return ip.StateOnly || ip.SkipExecutionChecks
}

// CheckParams are the parameters of a block pre-import check. Checks are
// passed through to the inner import stage untouched.
type CheckParams struct {
	Header *BlockHeader
}
