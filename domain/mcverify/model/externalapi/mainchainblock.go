package externalapi

// Slot is a mainchain or anchor-chain slot index.
type Slot uint64

// Timestamp is a scalar point in time, expressed in Unix milliseconds. It is
// the unit in which mainchain block timestamps and reference timestamps are
// reported.
type Timestamp uint64

// MainchainBlock is an immutable snapshot of a mainchain block as reported by
// a MainchainDataSource. The caller owns the returned value.
type MainchainBlock struct {
	Number          uint64
	Hash            *McBlockHash
	Epoch           uint64
	Slot            Slot
	TimestampMillis Timestamp
}

// Clone returns a clone of MainchainBlock
func (mb *MainchainBlock) Clone() *MainchainBlock {
	if mb == nil {
		return nil
	}
	clone := *mb
	if mb.Hash != nil {
		clone.Hash = NewMcBlockHashFromByteArray(mb.Hash.ByteArray())
	}
	return &clone
}

// Equal returns whether mb equals to other
func (mb *MainchainBlock) Equal(other *MainchainBlock) bool {
	if mb == nil || other == nil {
		return mb == other
	}

	return mb.Number == other.Number &&
		mb.Hash.Equal(other.Hash) &&
		mb.Epoch == other.Epoch &&
		mb.Slot == other.Slot &&
		mb.TimestampMillis == other.TimestampMillis
}
