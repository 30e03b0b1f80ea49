package dense

import "hash"

// HashLeaf returns H(record), the level 0 digest committing a record.
// ** the hasher is reset **
func HashLeaf(hasher hash.Hash, record []byte) []byte {
	hasher.Reset()
	_, _ = hasher.Write(record)
	return hasher.Sum(nil)
}

// HashPair returns H(left || right), the digest of an interior node.
// ** the hasher is reset **
//
// Note there is no domain tag and no length prefix between the operands, so
// interior digests are not distinguishable from the leaf digest of a 64
// byte record whose content happens to equal left || right. This is kept
// for digest compatibility; see the package doc caveat before reusing the
// scheme anywhere adversarial.
func HashPair(hasher hash.Hash, left, right []byte) []byte {
	hasher.Reset()
	_, _ = hasher.Write(left)
	_, _ = hasher.Write(right)
	return hasher.Sum(nil)
}
