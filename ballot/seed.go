package ballot

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/apportion/core"
)

// SeedFor derives a ballot seed from an election's input: the number of
// seats followed by every party's vote count, hashed with xxh3.
//
// Reruns of the same election draw the same ballot while different
// elections get unrelated streams. A zero digest is mapped to defaultSeed's
// policy by NewSeeded, so the result is always usable directly.
//
// Complexity: O(len(votes)).
func SeedFor(total core.Count, votes []core.Votes) int64 {
	buf := make([]byte, 0, 8*(len(votes)+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(total))
	for _, v := range votes {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	return int64(xxh3.Hash(buf))
}
