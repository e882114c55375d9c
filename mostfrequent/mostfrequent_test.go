package mostfrequent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect_Empty(t *testing.T) {
	out, st := Select(nil)
	require.Empty(t, out)
	require.True(t, st.IsSuccess())
}

func TestSelect_SingleWinner(t *testing.T) {
	items := [][]byte{[]byte("a"), []byte("b"), []byte("a"), []byte("a")}
	out, st := Select(items)
	require.True(t, st.IsSuccess())
	require.Len(t, out, 3)
	for _, v := range out {
		require.Equal(t, []byte("a"), v)
	}
}

func TestSelect_Tie(t *testing.T) {
	items := [][]byte{[]byte("a"), []byte("b")}
	out, st := Select(items)
	require.True(t, st.IsWarning())
	require.Len(t, out, 2)
}

func TestSelect_ThreeWayTie(t *testing.T) {
	items := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("a"), []byte("b"), []byte("c")}
	out, st := Select(items)
	require.True(t, st.IsWarning())
	require.Len(t, out, 6)
}
