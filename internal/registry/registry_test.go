package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokviz/tokviz/internal/vocab"
)

func TestGlobalBuildsThreeBuiltins(t *testing.T) {
	r, err := Global()
	require.NoError(t, err)

	avail := r.Available()
	require.Len(t, avail, 3)
	require.ElementsMatch(t, []string{"cl100k_base", "o200k_base", "p50k_base"}, avail)
}

func TestGlobalIsASingleton(t *testing.T) {
	r1, err1 := Global()
	r2, err2 := Global()
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Same(t, r1, r2)
}

func TestGetFallsBackToDefault(t *testing.T) {
	r, err := Global()
	require.NoError(t, err)

	v := r.Get("not-a-real-vocab-id")
	require.Equal(t, DefaultVocabID, v.ID())
}

func TestGetKnownID(t *testing.T) {
	r, err := Global()
	require.NoError(t, err)

	v := r.Get("p50k_base")
	require.Equal(t, "p50k_base", v.ID())
}

func TestVocabInfo(t *testing.T) {
	r, err := Global()
	require.NoError(t, err)

	info, ok := r.VocabInfo("cl100k_base")
	require.True(t, ok)
	require.Equal(t, "cl100k_base", info.ID)
	require.Greater(t, info.VocabSize, 256)

	_, ok = r.VocabInfo("nope")
	require.False(t, ok)
}

func TestPrivateRegistryDuplicateRegisterRejected(t *testing.T) {
	r := New()
	v, err := vocab.NewFromMerges("dup", nil)
	require.NoError(t, err)

	require.NoError(t, r.Register("dup", v))
	require.Error(t, r.Register("dup", v))
}

func TestPrivateRegistryRegisterAfterFreezeRejected(t *testing.T) {
	r := New()
	v, err := vocab.NewFromMerges("toy", nil)
	require.NoError(t, err)

	r.Freeze()
	require.Error(t, r.Register("toy", v))
}

func TestPrivateRegistryAvailableOrderIsRegistrationOrder(t *testing.T) {
	r := New()
	for _, id := range []string{"z", "a", "m"} {
		v, err := vocab.NewFromMerges(id, nil)
		require.NoError(t, err)
		require.NoError(t, r.Register(id, v))
	}
	require.Equal(t, []string{"z", "a", "m"}, r.Available())
}

func TestGetPanicsWhenRegistryMalformed(t *testing.T) {
	r := New()
	r.Freeze()
	require.Panics(t, func() { r.Get("anything") })
}
