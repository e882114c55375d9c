package tag

import (
	"encoding/binary"
	"hash/crc32"

	"golang.org/x/crypto/sha3"
)

// crc32Of returns the CRC-32 of content using polynomial 0xEDB88320
// (reflected), initial value 0xFFFFFFFF, and final XOR 0xFFFFFFFF — the
// IEEE parameter set, which is exactly what spec.md §4.3 specifies and
// exactly what hash/crc32.ChecksumIEEE computes. No third-party CRC
// library in the retrieval pack implements a different, better-fitting
// parameter set, so the standard library is used here deliberately.
func crc32Of(content []byte) uint32 {
	return crc32.ChecksumIEEE(content)
}

// sha3256Of returns the SHA3-256 digest of content.
//
// golang.org/x/crypto/sha3 is the ecosystem library a Go project reaches
// for instead of hand-rolling Keccak/SHA3, the way
// other_examples/9b49976b_ethereum-go-ethereum__crypto-sha3-sha3.go.go and
// other_examples/a765fec6_o8oo8o-WebSSH__gossh-lib-gin-validator-sha3.go.go
// each wrap a Keccak implementation behind a hash.Hash-shaped API.
func sha3256Of(content []byte) [32]byte {
	return sha3.Sum256(content)
}

func putUint32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

func getUint32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
