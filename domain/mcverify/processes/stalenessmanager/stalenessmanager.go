// Package stalenessmanager computes the tip staleness threshold: the maximum
// age the local observer's mainchain tip may have before the observer is
// assumed to be lagging and nonexistence of a reference can no longer be
// trusted.
package stalenessmanager

import (
	"time"

	"github.com/anchorchain/anchord/domain/mcverify/model"
)

// defaultTipStalenessThresholdSeconds is used when no explicit threshold is
// configured and the mainchain parameters are not available.
// 4320 seconds (72 minutes), derived from 0.5 * k * slotDuration / activeSlotsCoeff
// with k=432, slotDuration=1000ms, activeSlotsCoeff=0.05.
const defaultTipStalenessThresholdSeconds = 4320

type stalenessManager struct {
	threshold time.Duration
}

// New instantiates a new StalenessManager. The threshold is computed once,
// in this precedence order:
//  1. explicitThresholdSeconds, used verbatim when present;
//  2. derived from the mainchain parameters when the security parameter k,
//     the active slots coefficient f (f > 0) and the mainchain slot duration
//     are all present: floor(0.5 * k * slotDurationMillis / f / 1000) seconds.
//     k/f slots is the expected number of slots needed to produce k blocks,
//     so this is a conservative "typically confirmed by now" bound. The
//     result is truncated, not rounded: this is a security boundary and must
//     not drift upwards past what operators configured for;
//  3. the fixed default of 4320 seconds otherwise.
func New(explicitThresholdSeconds *uint64, securityParameter *uint64,
	activeSlotsCoeff *float64, slotDurationMillis *uint64) model.StalenessManager {

	return &stalenessManager{
		threshold: time.Duration(thresholdSeconds(
			explicitThresholdSeconds, securityParameter, activeSlotsCoeff, slotDurationMillis)) * time.Second,
	}
}

// TipStalenessThreshold returns the maximum trusted tip age.
func (sm *stalenessManager) TipStalenessThreshold() time.Duration {
	return sm.threshold
}

func thresholdSeconds(explicitThresholdSeconds *uint64, securityParameter *uint64,
	activeSlotsCoeff *float64, slotDurationMillis *uint64) uint64 {

	if explicitThresholdSeconds != nil {
		return *explicitThresholdSeconds
	}

	if securityParameter != nil && activeSlotsCoeff != nil && slotDurationMillis != nil &&
		*activeSlotsCoeff > 0 {

		return uint64(0.5 * float64(*securityParameter) * float64(*slotDurationMillis) /
			*activeSlotsCoeff / 1000.0)
	}

	return defaultTipStalenessThresholdSeconds
}
