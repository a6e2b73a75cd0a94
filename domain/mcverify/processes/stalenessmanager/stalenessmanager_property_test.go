package stalenessmanager

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestExplicitThresholdAlwaysWins verifies an explicit override is used
// verbatim no matter which mainchain parameters are present.
func TestExplicitThresholdAlwaysWins(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("explicit threshold is used verbatim", prop.ForAll(
		func(explicitSeconds, securityParameter uint64, activeSlotsCoeff float64) bool {
			manager := New(&explicitSeconds, &securityParameter, &activeSlotsCoeff,
				uint64Ptr(1000))
			return manager.TipStalenessThreshold() ==
				time.Duration(explicitSeconds)*time.Second
		},
		gen.UInt64Range(0, 1<<32),
		gen.UInt64Range(0, 1<<20),
		gen.Float64Range(-1, 1),
	))

	properties.TestingRun(t)
}

// TestDerivedThresholdBounds verifies the derived threshold never exceeds the
// real-valued formula and is within one second of it (truncation).
func TestDerivedThresholdBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("derived threshold truncates the formula", prop.ForAll(
		func(securityParameter uint64, activeSlotsCoeff float64, slotDurationMillis uint64) bool {
			manager := New(nil, &securityParameter, &activeSlotsCoeff, &slotDurationMillis)
			derived := manager.TipStalenessThreshold().Seconds()

			exact := 0.5 * float64(securityParameter) * float64(slotDurationMillis) /
				activeSlotsCoeff / 1000.0
			return derived <= exact && exact-derived < 1
		},
		gen.UInt64Range(1, 1<<20),
		gen.Float64Range(0.01, 1),
		gen.UInt64Range(1, 60000),
	))

	properties.Property("derived threshold grows with the security parameter", prop.ForAll(
		func(securityParameter uint64, activeSlotsCoeff float64) bool {
			smaller := New(nil, &securityParameter, &activeSlotsCoeff, uint64Ptr(1000))
			larger := New(nil, uint64Ptr(securityParameter*2), &activeSlotsCoeff, uint64Ptr(1000))
			return larger.TipStalenessThreshold() >= smaller.TipStalenessThreshold()
		},
		gen.UInt64Range(1, 1<<20),
		gen.Float64Range(0.01, 1),
	))

	properties.TestingRun(t)
}
