package externalapi

import (
	"testing"
)

func TestNewMcBlockHashFromByteSlice(t *testing.T) {
	hashBytes := make([]byte, McBlockHashSize)
	hashBytes[0] = 0xab
	hashBytes[McBlockHashSize-1] = 0xcd

	hash, err := NewMcBlockHashFromByteSlice(hashBytes)
	if err != nil {
		t.Fatalf("TestNewMcBlockHashFromByteSlice: unexpected error: %s", err)
	}
	if hash.hashArray[0] != 0xab || hash.hashArray[McBlockHashSize-1] != 0xcd {
		t.Fatalf("TestNewMcBlockHashFromByteSlice: hash bytes were not copied correctly")
	}

	// The hash must own its bytes.
	hashBytes[0] = 0x00
	if hash.hashArray[0] != 0xab {
		t.Fatalf("TestNewMcBlockHashFromByteSlice: hash shares memory with the input slice")
	}

	_, err = NewMcBlockHashFromByteSlice(make([]byte, McBlockHashSize-1))
	if err == nil {
		t.Fatalf("TestNewMcBlockHashFromByteSlice: Expected an error for a %d-byte slice, found: nil",
			McBlockHashSize-1)
	}
}

func TestMcBlockHashString(t *testing.T) {
	hashString := "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"
	hash, err := NewMcBlockHashFromString(hashString)
	if err != nil {
		t.Fatalf("TestMcBlockHashString: unexpected error: %s", err)
	}
	if hash.String() != hashString {
		t.Fatalf("TestMcBlockHashString: Expected %s, found: %s", hashString, hash.String())
	}

	_, err = NewMcBlockHashFromString("0102")
	if err == nil {
		t.Fatal("TestMcBlockHashString: Expected an error for a short hash string, found: nil")
	}
	_, err = NewMcBlockHashFromString("zz02030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20")
	if err == nil {
		t.Fatal("TestMcBlockHashString: Expected an error for a non-hex hash string, found: nil")
	}
}

func TestMcBlockHashEqual(t *testing.T) {
	hashA := NewMcBlockHashFromByteArray(&[McBlockHashSize]byte{1, 2, 3})
	hashB := NewMcBlockHashFromByteArray(&[McBlockHashSize]byte{1, 2, 3})
	hashC := NewMcBlockHashFromByteArray(&[McBlockHashSize]byte{4, 5, 6})

	tests := []struct {
		name           string
		hash           *McBlockHash
		other          *McBlockHash
		expectedResult bool
	}{
		{"equal hashes", hashA, hashB, true},
		{"different hashes", hashA, hashC, false},
		{"nil vs non-nil", nil, hashA, false},
		{"both nil", nil, nil, true},
	}

	for _, test := range tests {
		result := test.hash.Equal(test.other)
		if result != test.expectedResult {
			t.Errorf("TestMcBlockHashEqual: %s: Expected %t, found: %t",
				test.name, test.expectedResult, result)
		}
	}
}

func TestMainchainBlockClone(t *testing.T) {
	block := &MainchainBlock{
		Number:          42,
		Hash:            NewMcBlockHashFromByteArray(&[McBlockHashSize]byte{7}),
		Epoch:           3,
		Slot:            1337,
		TimestampMillis: 1700000000000,
	}

	clone := block.Clone()
	if !block.Equal(clone) {
		t.Fatal("TestMainchainBlockClone: clone is not equal to the original")
	}
	if block.Hash == clone.Hash {
		t.Fatal("TestMainchainBlockClone: clone shares its hash pointer with the original")
	}

	var nilBlock *MainchainBlock
	if nilBlock.Clone() != nil {
		t.Fatal("TestMainchainBlockClone: Expected nil clone of a nil block")
	}
}
