package mchashverifier

import (
	"context"

	"github.com/anchorchain/anchord/domain/mcverify/importerrors"
	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
	"github.com/pkg/errors"
)

// decideStalenessAware runs the canonical three-step decision tree. The
// steps are strictly sequential and short-circuit at the first conclusive
// signal; each query failure defers rather than escalating, so only a
// confirmed-nonexistent reference against a fresh local view ever rejects.
//
// Stability is checked before existence because most legitimate blocks
// reference already-stable mainchain points, which makes the existence query
// unnecessary on the common path. Local-observer health is checked only
// after confirmed nonexistence so the observer's own lag never penalizes a
// sender whose reference would otherwise have been found.
func (v *mcHashVerifier) decideStalenessAware(ctx context.Context, mcHash *externalapi.McBlockHash,
	referenceTimestamp externalapi.Timestamp) decision {

	// Step 1: is the referenced block stable?
	if err := ctx.Err(); err != nil {
		return deferImport(importerrors.NewErrTransientQueryFailure(err))
	}
	stableBlock, err := v.dataSource.GetStableBlock(ctx, mcHash, referenceTimestamp)
	if err != nil {
		return deferImport(importerrors.NewErrTransientQueryFailure(
			errors.Wrapf(err, "error checking stability of mainchain block %s", mcHash)))
	}
	if stableBlock != nil {
		log.Debugf("Mainchain block %s is stable, proceeding with import", mcHash)
		return accept()
	}
	log.Infof("Mainchain block %s is not stable, checking existence", mcHash)

	// Step 2: does the referenced block exist at all?
	if err := ctx.Err(); err != nil {
		return deferImport(importerrors.NewErrTransientQueryFailure(err))
	}
	existingBlock, err := v.dataSource.GetBlockByHash(ctx, mcHash)
	if err != nil {
		return deferImport(importerrors.NewErrTransientQueryFailure(
			errors.Wrapf(err, "error checking existence of mainchain block %s", mcHash)))
	}
	if existingBlock != nil {
		// The reference exists but hasn't accumulated enough
		// confirmations yet. Wait, no penalty.
		log.Infof("Mainchain block %s exists but is not yet stable - waiting for stability", mcHash)
		return deferImport(nil)
	}
	log.Infof("Mainchain block %s does not exist locally, checking local observer health", mcHash)

	// Step 3: the reference is missing - but is our own view fresh enough
	// to trust that?
	if err := ctx.Err(); err != nil {
		return deferImport(importerrors.NewErrTransientQueryFailure(err))
	}
	tip, err := v.dataSource.GetTip(ctx)
	if err != nil {
		return deferImport(importerrors.NewErrLocalViewUnhealthy(
			errors.Wrap(err, "cannot get mainchain tip")))
	}
	if tip == nil {
		return deferImport(importerrors.NewErrLocalViewUnhealthy(
			errors.New("local observer has no mainchain tip")))
	}

	tipAge := v.tipAge(tip.TimestampMillis)
	if tipAge > v.tipStalenessThreshold {
		// The local observer is likely lagging; the reference may yet
		// resolve. Never penalize on an assumption.
		return deferImport(importerrors.NewErrLocalViewUnhealthy(
			errors.Errorf("mainchain tip is stale (age: %s > threshold: %s)",
				tipAge, v.tipStalenessThreshold)))
	}

	// Nonexistent against a fresh local view: the reference is almost
	// certainly fabricated.
	return reject(importerrors.NewErrReferenceNotFound(mcHash, tipAge, v.tipStalenessThreshold))
}
