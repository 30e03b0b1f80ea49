package dense

import (
	"bytes"
	"hash"
)

// ProofStep is one sibling on the path from a leaf to the root.
type ProofStep struct {
	Side    Side
	Sibling []byte
}

// Proof is an inclusion proof: the ordered sibling digests, leaf to root,
// sufficient to recompute the root from one leaf digest. Steps hold copies
// of the tree's digests, so a Proof is plain data and stays valid
// independent of the Tree that generated it.
type Proof struct {
	Steps []ProofStep
}

// InclusionProof generates a proof that record is committed by the tree.
//
// The record is located through the leaf digest index; a record that was
// never committed (or whose digest was displaced by a colliding later
// record) yields ErrLeafNotFound. A committed record in a single leaf tree
// yields a valid zero step proof, which is distinct from absence.
func (t *Tree) InclusionProof(hasher hash.Hash, record []byte) (Proof, error) {
	i, ok := t.leafIndex[string(HashLeaf(hasher, record))]
	if !ok {
		return Proof{}, ErrLeafNotFound
	}
	return t.InclusionProofLeaf(i)
}

// InclusionProofLeaf generates a proof for the leaf at position i of level
// 0. It does not consult the leaf digest index, so it is unambiguous even
// when distinct records share a leaf digest.
func (t *Tree) InclusionProofLeaf(i int) (Proof, error) {
	if i < 0 || i >= t.LeafCount() {
		return Proof{}, ErrIndexOutOfRange
	}

	var steps []ProofStep

	// Walk every level below the root. The sibling of i is i^1. An even i
	// with no right neighbour is the promoted tail of an odd length level:
	// its digest carried up unchanged, so that level contributes no step.
	for _, level := range t.levels[:len(t.levels)-1] {
		if i%2 == 0 {
			if i+1 < len(level) {
				steps = append(steps, ProofStep{Side: SiblingRight, Sibling: copyDigest(level[i+1])})
			}
		} else {
			steps = append(steps, ProofStep{Side: SiblingLeft, Sibling: copyDigest(level[i-1])})
		}
		i /= 2
	}
	return Proof{Steps: steps}, nil
}

// VerifyInclusion reports whether proof reproduces claimedRoot starting
// from the leaf digest of record. Nothing is needed from the tree: the
// record, the proof and the claimed root are sufficient.
//
// The running digest folds each step in order, sibling on the tagged side,
// and the final digest must equal claimedRoot exactly. A zero step proof
// verifies when the leaf digest itself equals claimedRoot, the single leaf
// tree case.
func VerifyInclusion(hasher hash.Hash, record []byte, proof Proof, claimedRoot []byte) bool {
	cur := HashLeaf(hasher, record)
	for _, s := range proof.Steps {
		if s.Side == SiblingLeft {
			cur = HashPair(hasher, s.Sibling, cur)
		} else {
			cur = HashPair(hasher, cur, s.Sibling)
		}
	}
	return bytes.Equal(cur, claimedRoot)
}

func copyDigest(d []byte) []byte {
	out := make([]byte, len(d))
	copy(out, d)
	return out
}
