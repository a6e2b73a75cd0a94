package model

import "time"

// StalenessManager knows the maximum age the local observer's mainchain tip
// may have before the observer's view is considered unreliable. The threshold
// is fixed at construction time.
type StalenessManager interface {
	TipStalenessThreshold() time.Duration
}
