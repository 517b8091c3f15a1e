package resolver

import "encoding/binary"

const (
	murmurM    = 0x5bd1e995
	murmurR    = 24
	murmurSeed = 1
)

// Fingerprint computes the CurseForge file fingerprint: 32-bit MurmurHash2
// with seed 1 over the content with tab, newline, carriage return and space
// bytes removed.
func Fingerprint(data []byte) uint32 {
	normalized := make([]byte, 0, len(data))
	for _, b := range data {
		switch b {
		case 9, 10, 13, 32:
			continue
		}
		normalized = append(normalized, b)
	}
	return murmur2(normalized, murmurSeed)
}

func murmur2(data []byte, seed uint32) uint32 {
	h := seed ^ uint32(len(data))

	for len(data) >= 4 {
		k := binary.LittleEndian.Uint32(data)
		k *= murmurM
		k ^= k >> murmurR
		k *= murmurM

		h *= murmurM
		h ^= k
		data = data[4:]
	}

	switch len(data) {
	case 3:
		h ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[0])
		h *= murmurM
	}

	h ^= h >> 13
	h *= murmurM
	h ^= h >> 15
	return h
}
