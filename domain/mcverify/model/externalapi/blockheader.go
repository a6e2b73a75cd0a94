package externalapi

// DigestID identifies the consensus engine a digest item belongs to.
type DigestID [4]byte

var (
	// McHashDigestID tags the digest item carrying the mainchain block hash
	// the anchor-chain block commits to.
	McHashDigestID = DigestID{'m', 'c', 's', 'h'}

	// SlotDigestID tags the pre-runtime digest item carrying the slot the
	// block was produced in, as an 8-byte little-endian integer.
	SlotDigestID = DigestID{'a', 'u', 'r', 'a'}
)

// String returns the digest ID as a readable 4-character tag.
func (id DigestID) String() string {
	return string(id[:])
}

// DigestItem is a single entry in a header's digest log: an engine ID
// together with an opaque payload whose meaning is known only to that engine.
type DigestItem struct {
	ID      DigestID
	Payload []byte
}

// BlockHeader is the part of an anchor-chain block header this layer looks
// at. The header is otherwise opaque to mainchain-hash verification - only
// the digest log is inspected.
type BlockHeader struct {
	Number uint64
	Digest []*DigestItem
}
