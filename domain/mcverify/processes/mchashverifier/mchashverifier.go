// Package mchashverifier implements the mainchain-hash verifying block
// import stage. It wraps an inner BlockImport and, before delegating to it,
// verifies that the mainchain block a proposed anchor-chain block refers to
// checks out against the local observer's view of the mainchain.
//
// Verification has to tell apart three situations that all look like "the
// reference doesn't check out yet": a reference that exists but is not yet
// stable, a fabricated reference that will never resolve, and a healthy
// reference the local observer simply hasn't caught up to. Only the
// fabricated case rejects (penalizing the sender); everything else defers.
package mchashverifier

import (
	"context"
	"time"

	"github.com/anchorchain/anchord/domain/mcverify/model"
	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
	"github.com/anchorchain/anchord/infrastructure/logger"
	"github.com/anchorchain/anchord/util/mstime"
)

type outcome byte

const (
	outcomeAccept outcome = iota
	outcomeDefer
	outcomeReject
)

// decision is the per-call verdict of a verification policy. reason carries
// the typed error behind a reject, or the classification of a defer (used
// only for logging - defers never surface errors).
type decision struct {
	outcome outcome
	reason  error
}

func accept() decision {
	return decision{outcome: outcomeAccept}
}

func deferImport(reason error) decision {
	return decision{outcome: outcomeDefer, reason: reason}
}

func reject(reason error) decision {
	return decision{outcome: outcomeReject, reason: reason}
}

// mcHashVerifier is stateless between calls: each ImportBlock is a pure
// function of the header, the configured threshold and the data source's
// responses, so a single instance is safely shared by concurrent imports.
type mcHashVerifier struct {
	inner                 model.BlockImport
	dataSource            model.MainchainDataSource
	headerExtractor       model.HeaderExtractor
	tipStalenessThreshold time.Duration
	policy                Policy

	// now is replaceable in tests to make tip ages deterministic.
	now func() time.Time
}

// New instantiates a new mainchain-hash verifying BlockImport wrapping the
// given inner import stage.
func New(inner model.BlockImport, dataSource model.MainchainDataSource,
	headerExtractor model.HeaderExtractor, stalenessManager model.StalenessManager,
	policy Policy) model.BlockImport {

	return &mcHashVerifier{
		inner:                 inner,
		dataSource:            dataSource,
		headerExtractor:       headerExtractor,
		tipStalenessThreshold: stalenessManager.TipStalenessThreshold(),
		policy:                policy,
		now:                   mstime.Now,
	}
}

// CheckBlock delegates to the inner import stage. No mainchain-hash
// verification is applied to pre-import checks.
func (v *mcHashVerifier) CheckBlock(ctx context.Context, params *externalapi.CheckParams) (
	externalapi.ImportResult, error) {

	return v.inner.CheckBlock(ctx, params)
}

// ImportBlock verifies the mainchain reference embedded in the block's
// header and, depending on the verdict, forwards the block unchanged to the
// inner import stage (accept), reports MissingState so the pipeline retries
// later (defer), or returns a typed error (reject).
func (v *mcHashVerifier) ImportBlock(ctx context.Context, params *externalapi.ImportParams) (
	externalapi.ImportResult, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "mcHashVerifier.ImportBlock")
	defer onEnd()

	// State-only and execution-skipping imports carry nothing this layer
	// can verify.
	if params.SkipsStateVerification() {
		log.Debugf("Import of block %d carries no state to verify, skipping mainchain hash verification",
			blockNumber(params.Header))
		return v.inner.ImportBlock(ctx, params)
	}

	// A header that cannot even be parsed is a structural defect, not a
	// retryable condition. Reject before issuing any query.
	mcHash, err := v.headerExtractor.MainchainHash(params.Header)
	if err != nil {
		log.Warnf("Failed to extract mainchain hash from header of block %d: %s",
			blockNumber(params.Header), err)
		return externalapi.KnownBad, err
	}
	referenceTimestamp, err := v.headerExtractor.ReferenceTimestamp(params.Header)
	if err != nil {
		log.Warnf("Failed to extract slot from header of block %d: %s",
			blockNumber(params.Header), err)
		return externalapi.KnownBad, err
	}

	var verdict decision
	switch v.policy {
	case PolicyExistenceFirst:
		verdict = v.decideExistenceFirst(ctx, mcHash, referenceTimestamp)
	default:
		verdict = v.decideStalenessAware(ctx, mcHash, referenceTimestamp)
	}

	switch verdict.outcome {
	case outcomeAccept:
		return v.inner.ImportBlock(ctx, params)
	case outcomeDefer:
		if verdict.reason != nil {
			log.Warnf("Deferring import of block %d: %s", blockNumber(params.Header), verdict.reason)
		}
		return externalapi.MissingState, nil
	default:
		log.Warnf("Rejecting block %d: %s", blockNumber(params.Header), verdict.reason)
		return externalapi.KnownBad, verdict.reason
	}
}

// tipAge returns how far behind "now" the given tip timestamp is, saturating
// at zero for tips from the future.
func (v *mcHashVerifier) tipAge(tipTimestampMillis externalapi.Timestamp) time.Duration {
	age := v.now().Sub(mstime.UnixMilliToTime(int64(tipTimestampMillis)))
	if age < 0 {
		return 0
	}
	return age
}

func blockNumber(header *externalapi.BlockHeader) uint64 {
	if header == nil {
		return 0
	}
	return header.Number
}
