package dense

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProofCodecRoundTrip(t *testing.T) {
	for n := 1; n <= 10; n++ {
		records := singleByteRecords(n)
		tree := Construct(sha256.New(), records)
		root := tree.Root()

		for i, record := range records {
			proof, err := tree.InclusionProof(sha256.New(), record)
			require.NoError(t, err)

			b, err := proof.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, b, 4+len(proof.Steps)*proofStepBytes)

			var got Proof
			require.NoError(t, got.UnmarshalBinary(b))
			require.Equal(t, proof, got, "n=%d i=%d", n, i)

			// the decoded proof still verifies
			require.True(t, VerifyInclusion(sha256.New(), record, got, root))
		}
	}
}

func TestProofCodecEmptyProof(t *testing.T) {
	b, err := Proof{}.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0}, b)

	var got Proof
	require.NoError(t, got.UnmarshalBinary(b))
	require.Empty(t, got.Steps)
}

func TestProofCodecDecodeRejects(t *testing.T) {
	tree := Construct(sha256.New(), singleByteRecords(4))
	proof, err := tree.InclusionProofLeaf(2)
	require.NoError(t, err)
	b, err := proof.MarshalBinary()
	require.NoError(t, err)

	var got Proof

	// short header
	require.ErrorIs(t, got.UnmarshalBinary(nil), ErrBadProofSize)
	require.ErrorIs(t, got.UnmarshalBinary(b[:3]), ErrBadProofSize)

	// truncated step
	require.ErrorIs(t, got.UnmarshalBinary(b[:len(b)-1]), ErrBadProofSize)

	// trailing bytes
	require.ErrorIs(t, got.UnmarshalBinary(append(append([]byte{}, b...), 0x00)), ErrBadProofSize)

	// side tag neither 0 nor 1
	bad := append([]byte{}, b...)
	bad[4] = 0x02
	require.ErrorIs(t, got.UnmarshalBinary(bad), ErrBadSide)
}

func TestProofCodecEncodeRejects(t *testing.T) {
	_, err := Proof{Steps: []ProofStep{{Side: SiblingLeft, Sibling: []byte{0x01}}}}.MarshalBinary()
	require.ErrorIs(t, err, ErrBadDigestSize)

	sibling := make([]byte, HashBytes)
	_, err = Proof{Steps: []ProofStep{{Side: Side(9), Sibling: sibling}}}.MarshalBinary()
	require.ErrorIs(t, err, ErrBadSide)
}
