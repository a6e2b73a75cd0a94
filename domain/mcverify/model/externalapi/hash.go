package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// McBlockHashSize of array used to store mainchain block hashes.
const McBlockHashSize = 32

// McBlockHash is the domain representation of a mainchain block hash, as it
// appears in an anchor-chain header digest.
type McBlockHash struct {
	hashArray [McBlockHashSize]byte
}

// NewMcBlockHashFromByteArray constructs a new McBlockHash out of a byte array
func NewMcBlockHashFromByteArray(hashBytes *[McBlockHashSize]byte) *McBlockHash {
	return &McBlockHash{
		hashArray: *hashBytes,
	}
}

// NewMcBlockHashFromByteSlice constructs a new McBlockHash out of a byte slice.
// Returns an error if the length of the byte slice is not exactly `McBlockHashSize`
func NewMcBlockHashFromByteSlice(hashBytes []byte) (*McBlockHash, error) {
	if len(hashBytes) != McBlockHashSize {
		return nil, errors.Errorf("invalid hash size. Want: %d, got: %d",
			McBlockHashSize, len(hashBytes))
	}
	hash := McBlockHash{
		hashArray: [McBlockHashSize]byte{},
	}
	copy(hash.hashArray[:], hashBytes)
	return &hash, nil
}

// NewMcBlockHashFromString constructs a new McBlockHash out of a hex-encoded
// string. Returns an error if the string does not decode to exactly
// `McBlockHashSize` bytes
func NewMcBlockHashFromString(hashString string) (*McBlockHash, error) {
	expectedLength := McBlockHashSize * 2
	if len(hashString) != expectedLength {
		return nil, errors.Errorf("hash string length is %d, while it should be %d",
			len(hashString), expectedLength)
	}

	hashBytes, err := hex.DecodeString(hashString)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewMcBlockHashFromByteSlice(hashBytes)
}

// String returns the hash as the hexadecimal string of the hash.
func (hash McBlockHash) String() string {
	return hex.EncodeToString(hash.hashArray[:])
}

// ByteArray returns the bytes in this hash represented as a bytes array.
// The hash bytes are cloned, therefore it is safe to modify the resulting array.
func (hash *McBlockHash) ByteArray() *[McBlockHashSize]byte {
	arrayClone := hash.hashArray
	return &arrayClone
}

// ByteSlice returns the bytes in this hash represented as a bytes slice.
// The hash bytes are cloned, therefore it is safe to modify the resulting slice.
func (hash *McBlockHash) ByteSlice() []byte {
	return hash.ByteArray()[:]
}

// Equal returns whether hash equals to other
func (hash *McBlockHash) Equal(other *McBlockHash) bool {
	if hash == nil || other == nil {
		return hash == other
	}

	return hash.hashArray == other.hashArray
}
