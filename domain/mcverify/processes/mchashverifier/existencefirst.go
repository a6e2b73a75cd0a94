package mchashverifier

import (
	"context"

	"github.com/anchorchain/anchord/domain/mcverify/importerrors"
	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
	"github.com/pkg/errors"
)

// decideExistenceFirst runs the strict two-step decision tree: a reference
// missing from the local view rejects immediately, without consulting the
// local observer's health. Operators who prefer it accept that a lagging
// observer may penalize honest senders.
func (v *mcHashVerifier) decideExistenceFirst(ctx context.Context, mcHash *externalapi.McBlockHash,
	referenceTimestamp externalapi.Timestamp) decision {

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

	if err := ctx.Err(); err != nil {
		return deferImport(importerrors.NewErrTransientQueryFailure(err))
	}
	existingBlock, err := v.dataSource.GetBlockByHash(ctx, mcHash)
	if err != nil {
		return deferImport(importerrors.NewErrTransientQueryFailure(
			errors.Wrapf(err, "error checking existence of mainchain block %s", mcHash)))
	}
	if existingBlock != nil {
		log.Infof("Mainchain block %s exists but is not yet stable - waiting for stability", mcHash)
		return deferImport(nil)
	}

	return reject(importerrors.NewErrReferenceNotFound(mcHash, 0, 0))
}
