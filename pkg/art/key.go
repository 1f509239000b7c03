package art

import "encoding/binary"

// keyLen is the width in bytes of an encoded key.
const keyLen = 8

// key is the lexicographically-comparable encoding of a 64-bit key: byte i
// is the i-th most significant byte of the original uint64.
//
// Byte-wise comparison of two keys yields the same order as unsigned integer
// comparison of the originals, which is what lets path compression and
// per-byte dispatch reconstruct the index's total order.
type key [keyLen]byte

// encode converts k into its big-endian byte encoding.
//
// The conversion is total and invertible: decode(encode(k)) == k for all k.
func encode(k uint64) key {
	var out key
	binary.BigEndian.PutUint64(out[:], k)
	return out
}

// decode inverts encode.
func decode(k key) uint64 {
	return binary.BigEndian.Uint64(k[:])
}
