package core

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// QueryResult is the raw payload returned by an evaluation.
// Decoding it is the caller's concern.
type QueryResult []byte

func (r QueryResult) String() string {
	return string(r)
}

// Digest is the SHA3-256 hash of a QueryResult.
type Digest [32]byte

func (r QueryResult) Digest() Digest {
	return Digest(sha3.Sum256(r))
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
