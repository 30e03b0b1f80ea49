package dense

import (
	"bytes"
	"hash"
)

// VerifyData reports whether records, committed in order under the same
// reduction rule as Construct, reproduce claimedRoot. The comparison is
// exact byte equality.
//
// Only the level being reduced is retained, so a full data set verifies in
// O(n) hashing without building the level stack or the leaf index.
//
// The empty record set verifies only against the empty root sentinel, and
// the empty sentinel verifies nothing else.
func VerifyData(hasher hash.Hash, records [][]byte, claimedRoot []byte) bool {
	if len(records) == 0 {
		return len(claimedRoot) == 0
	}
	if len(claimedRoot) == 0 {
		return false
	}

	cur := make([][]byte, len(records))
	for i, record := range records {
		cur[i] = HashLeaf(hasher, record)
	}
	for len(cur) > 1 {
		cur = reduceLevel(hasher, cur)
	}
	return bytes.Equal(cur[0], claimedRoot)
}
