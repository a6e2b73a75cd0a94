// Package ldbcachingsource decorates a MainchainDataSource with a persistent
// leveldb cache of positive stability answers. Stability is monotone: once a
// mainchain block is stable relative to a reference timestamp it stays stable
// relative to that timestamp forever, so positive GetStableBlock results never
// need invalidation. Negative results and all other queries pass through.
package ldbcachingsource

import (
	"context"
	"encoding/binary"

	"github.com/anchorchain/anchord/domain/mcverify/model"
	"github.com/anchorchain/anchord/domain/mcverify/model/externalapi"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
	"golang.org/x/crypto/blake2b"
)

// serializedBlockSize is the fixed size of a cached mainchain block:
// number, hash, epoch, slot and timestamp.
const serializedBlockSize = 8 + externalapi.McBlockHashSize + 8 + 8 + 8

type ldbCachingSource struct {
	inner model.MainchainDataSource
	ldb   *leveldb.DB
}

// New decorates inner with a stability cache backed by the given leveldb
// instance. The caller retains ownership of the database.
func New(inner model.MainchainDataSource, ldb *leveldb.DB) model.MainchainDataSource {
	return &ldbCachingSource{
		inner: inner,
		ldb:   ldb,
	}
}

// NewWithPath decorates inner with a stability cache stored at the given
// path. If the database doesn't exist, it is created; if it is corrupted, it
// is recovered (losing cached entries is harmless, they repopulate).
func NewWithPath(inner model.MainchainDataSource, path string) (model.MainchainDataSource, func() error, error) {
	ldb, err := leveldb.OpenFile(path, nil)
	if _, corrupted := err.(*ldbErrors.ErrCorrupted); corrupted {
		log.Warnf("Stability cache corruption detected for path %s: %s", path, err)
		ldb, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not open stability cache at %s", path)
	}
	return New(inner, ldb), ldb.Close, nil
}

// GetStableBlock serves from the cache when the (hash, referenceTimestamp)
// pair has been answered positively before, and otherwise queries the inner
// source, caching a positive answer. Cache failures degrade to the inner
// source; they never fail the query.
func (s *ldbCachingSource) GetStableBlock(ctx context.Context, hash *externalapi.McBlockHash,
	referenceTimestamp externalapi.Timestamp) (*externalapi.MainchainBlock, error) {

	key := stabilityCacheKey(hash, referenceTimestamp)

	cached, err := s.ldb.Get(key[:], nil)
	if err != nil && !errors.Is(err, leveldb.ErrNotFound) {
		log.Warnf("Failed to read stability cache for mainchain block %s: %s", hash, err)
	}
	if err == nil {
		block, err := deserializeMainchainBlock(cached)
		if err == nil {
			return block, nil
		}
		log.Warnf("Discarding corrupt stability cache entry for mainchain block %s: %s", hash, err)
	}

	block, err := s.inner.GetStableBlock(ctx, hash, referenceTimestamp)
	if err != nil || block == nil {
		return block, err
	}

	err = s.ldb.Put(key[:], serializeMainchainBlock(block), nil)
	if err != nil {
		log.Warnf("Failed to write stability cache for mainchain block %s: %s", hash, err)
	}
	return block, nil
}

// GetLatestStableBlock passes through to the inner source. Its answer depends
// on the observer's moving view, so it cannot be cached.
func (s *ldbCachingSource) GetLatestStableBlock(ctx context.Context,
	referenceTimestamp externalapi.Timestamp) (*externalapi.MainchainBlock, error) {

	return s.inner.GetLatestStableBlock(ctx, referenceTimestamp)
}

// GetBlockByHash passes through to the inner source.
func (s *ldbCachingSource) GetBlockByHash(ctx context.Context, hash *externalapi.McBlockHash) (
	*externalapi.MainchainBlock, error) {

	return s.inner.GetBlockByHash(ctx, hash)
}

// GetTip passes through to the inner source.
func (s *ldbCachingSource) GetTip(ctx context.Context) (*externalapi.MainchainBlock, error) {
	return s.inner.GetTip(ctx)
}

// stabilityCacheKey derives the cache key for a (hash, referenceTimestamp)
// pair: the blake2b-256 digest of the hash bytes followed by the
// little-endian timestamp.
func stabilityCacheKey(hash *externalapi.McBlockHash, referenceTimestamp externalapi.Timestamp) [blake2b.Size256]byte {
	var preimage [externalapi.McBlockHashSize + 8]byte
	copy(preimage[:], hash.ByteSlice())
	binary.LittleEndian.PutUint64(preimage[externalapi.McBlockHashSize:], uint64(referenceTimestamp))
	return blake2b.Sum256(preimage[:])
}

func serializeMainchainBlock(block *externalapi.MainchainBlock) []byte {
	serialized := make([]byte, serializedBlockSize)
	binary.LittleEndian.PutUint64(serialized[0:], block.Number)
	copy(serialized[8:], block.Hash.ByteSlice())
	binary.LittleEndian.PutUint64(serialized[8+externalapi.McBlockHashSize:], block.Epoch)
	binary.LittleEndian.PutUint64(serialized[16+externalapi.McBlockHashSize:], uint64(block.Slot))
	binary.LittleEndian.PutUint64(serialized[24+externalapi.McBlockHashSize:], uint64(block.TimestampMillis))
	return serialized
}

func deserializeMainchainBlock(serialized []byte) (*externalapi.MainchainBlock, error) {
	if len(serialized) != serializedBlockSize {
		return nil, errors.Errorf("serialized mainchain block is %d bytes, expected %d",
			len(serialized), serializedBlockSize)
	}
	hash, err := externalapi.NewMcBlockHashFromByteSlice(serialized[8 : 8+externalapi.McBlockHashSize])
	if err != nil {
		return nil, err
	}
	return &externalapi.MainchainBlock{
		Number:          binary.LittleEndian.Uint64(serialized[0:]),
		Hash:            hash,
		Epoch:           binary.LittleEndian.Uint64(serialized[8+externalapi.McBlockHashSize:]),
		Slot:            externalapi.Slot(binary.LittleEndian.Uint64(serialized[16+externalapi.McBlockHashSize:])),
		TimestampMillis: externalapi.Timestamp(binary.LittleEndian.Uint64(serialized[24+externalapi.McBlockHashSize:])),
	}, nil
}
