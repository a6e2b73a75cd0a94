package externalapi

// ImportResult is the outcome of a block-import attempt, as reported back to
// the surrounding pipeline.
type ImportResult byte

// ImportResult constants
const (
	// ImportedNewTip means the block was imported and became the new tip.
	ImportedNewTip ImportResult = iota

	// AlreadyInChain means the block was already known.
	AlreadyInChain

	// KnownBad means the block (or its sender) is known to be bad.
	KnownBad

	// UnknownParent means the block's parent is not known yet.
	UnknownParent

	// MissingState means the import cannot proceed yet and should be retried
	// later, without penalizing the sender. Deferred mainchain-hash
	// verification surfaces as MissingState.
	MissingState
)

var importResultStrings = map[ImportResult]string{
	ImportedNewTip: "ImportedNewTip",
	AlreadyInChain: "AlreadyInChain",
	KnownBad:       "KnownBad",
	UnknownParent:  "UnknownParent",
	MissingState:   "MissingState",
}

func (ir ImportResult) String() string {
	resultString, ok := importResultStrings[ir]
	if !ok {
		return "Unknown ImportResult"
	}
	return resultString
}
