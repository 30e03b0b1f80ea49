package dense

/*

# Dense merkle tree primitives for Forestrie (in-memory, construct-once)

This package provides a dense binary merkle hash tree: every node of every
level is materialized in memory, level 0 being the leaf digests and the last
level the single root. It complements the other Forestrie index structures.
Where `go-merklelog/mmr` never materializes the tree and `urkle` persists
records into preallocated massif regions, this package is for the small,
construct-once case: commit an ordered batch of opaque records, hand out the
root, and answer inclusion proofs against the retained levels.

It follows the same style as the sibling packages:

- small, composable functions
- an injected stdlib `hash.Hash` (SHA-256 is the standard choice)
- sentinel errors, no panics in correct usage

## Shape

Each level reduces to the next by hashing adjacent pairs, left || right. A
trailing unpaired digest on an odd length level is *promoted unchanged* to
the next level. It is not rehashed and it is not paired with itself or a
padding value:

	        root
	       /    \
	      .      \
	     / \      \
	    l0  l1    l2

This promotion rule is load bearing. The common alternative convention,
duplicating the last digest, produces a different root for every odd sized
tree, so "fixing" the rule silently changes every previously computed
commitment. The known answer tests pin the convention.

The empty record set is committed by the empty (nil) root. No real digest is
empty, so "nothing was committed" is always distinguishable from any actual
commitment.

## SECURITY CAVEAT: no leaf/interior domain separation

HashPair commits to the raw concatenation of its operands. There is no
domain tag distinguishing a leaf digest from an interior digest, and no
length prefix. This admits the classic second preimage construction where an
interior node is presented as if it were the leaf digest of a 64 byte
record. The scheme is kept because it is digest compatible with the existing
construction; it is NOT a recommendation. Deployments that control both ends
and need resistance in adversarial settings should adopt per kind tag bytes
the way `urkle` does (0x00 for leaves, 0x01 for interior nodes), accepting
that every digest changes.

## Proofs

An inclusion proof is the ordered list of sibling digests, leaf to root,
each tagged with the side it takes in the concatenation. Proof steps copy
their sibling digests out of the tree, so a Proof is plain data with no
lifetime coupling to the Tree that produced it, and it marshals to a fixed
wire form (see codec.go).

A Tree is immutable once constructed and safe for concurrent readers
without synchronization.

*/
