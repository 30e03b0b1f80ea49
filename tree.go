package dense

import "hash"

// Tree is a dense binary hash tree. Every level is retained, leaves first,
// so proofs read sibling digests straight out of the levels.
//
// A Tree is immutable once Construct returns and may be shared between
// concurrent readers without synchronization.
type Tree struct {
	// levels, bottom to top. For non empty input the last level holds
	// exactly one digest, the root. For empty input there is a single
	// empty level.
	levels [][][]byte

	// leafIndex maps a leaf digest to its position in level 0. When two
	// records hash identically only the last position survives; see
	// Construct.
	leafIndex map[string]int
}

// Construct commits records, in order, and returns the finished tree. It is
// total: every byte sequence is a valid record, including empty ones and
// duplicates, and the empty record set yields the tree whose root is the
// nil sentinel.
//
// Level 0 is the leaf digests in input order. Each level reduces to the
// next by hashing non overlapping adjacent pairs; a trailing unpaired
// digest on an odd length level is promoted to the next level unchanged
// (never rehashed, never duplicated). Reduction stops at a single digest.
//
// If two distinct records produce the same leaf digest the leaf index
// retains only the later position, and InclusionProof for either record
// proves that position. Callers that must distinguish such duplicates
// should track positions themselves and use InclusionProofLeaf.
func Construct(hasher hash.Hash, records [][]byte) *Tree {
	leaves := make([][]byte, len(records))
	leafIndex := make(map[string]int, len(records))
	for i, record := range records {
		h := HashLeaf(hasher, record)
		leaves[i] = h
		leafIndex[string(h)] = i
	}

	levels := [][][]byte{leaves}
	for cur := leaves; len(cur) > 1; {
		cur = reduceLevel(hasher, cur)
		levels = append(levels, cur)
	}

	return &Tree{levels: levels, leafIndex: leafIndex}
}

// reduceLevel produces the level above cur: adjacent pairs hash together,
// a trailing unpaired digest carries up as is.
func reduceLevel(hasher hash.Hash, cur [][]byte) [][]byte {
	next := make([][]byte, 0, (len(cur)+1)/2)
	for i := 0; i+1 < len(cur); i += 2 {
		next = append(next, HashPair(hasher, cur[i], cur[i+1]))
	}
	if len(cur)%2 == 1 {
		next = append(next, cur[len(cur)-1])
	}
	return next
}

// Root returns the tree's commitment, the single digest on the top level.
// For the empty tree it returns nil, which no real digest equals.
func (t *Tree) Root() []byte {
	top := t.levels[len(t.levels)-1]
	if len(top) == 0 {
		return nil
	}
	return top[0]
}

// LeafCount returns the number of committed records.
func (t *Tree) LeafCount() int {
	return len(t.levels[0])
}

// Height returns the number of levels, leaves and root inclusive. A single
// leaf tree has height 1; the empty tree also reports 1 (its one empty
// level).
func (t *Tree) Height() int {
	return len(t.levels)
}

// LeafIndex returns the level 0 position of record, resolved through the
// leaf digest index. ok is false when the record was not committed (or its
// digest was displaced by a colliding later record).
func (t *Tree) LeafIndex(hasher hash.Hash, record []byte) (i int, ok bool) {
	i, ok = t.leafIndex[string(HashLeaf(hasher, record))]
	return i, ok
}
