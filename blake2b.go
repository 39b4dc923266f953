package qbdiff

import "golang.org/x/crypto/blake2b"

// checksumSize is the width of the embedded integrity digest.
const checksumSize = blake2b.Size // 64

// checksum computes the keyless, single-shot BLAKE2b-512 digest of data.
func checksum(data []byte) [checksumSize]byte {
	return blake2b.Sum512(data)
}
