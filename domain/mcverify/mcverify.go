// Package mcverify assembles the mainchain-hash verification stage of the
// block import pipeline from its component processes.
package mcverify

import (
	"github.com/anchorchain/anchord/domain/mcverify/model"
	"github.com/anchorchain/anchord/domain/mcverify/processes/headerextractor"
	"github.com/anchorchain/anchord/domain/mcverify/processes/mchashverifier"
	"github.com/anchorchain/anchord/domain/mcverify/processes/stalenessmanager"
)

// Config holds the parameters of the verification stage. The mainchain
// parameters are pointers because they come from the mainchain's own
// configuration and may be absent; absent values fall back as documented on
// stalenessmanager.New.
type Config struct {
	// SlotDurationMillis is the anchor chain's slot duration, used to turn
	// a header's slot index into a reference timestamp.
	SlotDurationMillis uint64

	// TipStalenessThresholdSeconds overrides the derived staleness
	// threshold when set.
	TipStalenessThresholdSeconds *uint64

	// MainchainSecurityParameter is the mainchain's security parameter k.
	MainchainSecurityParameter *uint64

	// MainchainActiveSlotsCoeff is the mainchain's active slots
	// coefficient f.
	MainchainActiveSlotsCoeff *float64

	// MainchainSlotDurationMillis is the mainchain's slot duration.
	MainchainSlotDurationMillis *uint64

	// Policy selects how nonexistence of a reference is handled.
	Policy mchashverifier.Policy
}

// NewBlockImport builds the mainchain-hash verifying BlockImport around the
// given inner import stage, querying the given data source.
func NewBlockImport(config *Config, dataSource model.MainchainDataSource,
	inner model.BlockImport) model.BlockImport {

	extractor := headerextractor.New(config.SlotDurationMillis)
	staleness := stalenessmanager.New(
		config.TipStalenessThresholdSeconds,
		config.MainchainSecurityParameter,
		config.MainchainActiveSlotsCoeff,
		config.MainchainSlotDurationMillis)

	return mchashverifier.New(inner, dataSource, extractor, staleness, config.Policy)
}
