package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleSeparatorChar_RoundTrip(t *testing.T) {
	w, err := New(WithSeparator(NewSingleSeparatorChar('|')))
	require.NoError(t, err)

	cover := words(60)
	addRes := w.Add(cover, []byte("hello"), false)
	require.True(t, addRes.IsSuccess() || addRes.IsWarning())

	marked, ok := addRes.Value()
	require.True(t, ok)
	require.NotEqual(t, cover, marked)

	getRes := w.Get(marked, true, true)
	require.True(t, getRes.IsSuccess())

	values, ok := getRes.Value()
	require.True(t, ok)
	require.Len(t, values, 1)
	require.Equal(t, []byte("hello"), values[0].Bytes())
}

// TestSingleSeparatorChar_MultiCopy exercises §4.2's "several copies placed
// across one cover" case for the SingleSeparatorChar strategy, which
// delimits a copy's end only by the next copy's leading separator — the
// exact boundary singleSeparatorRanges has to get right for every copy, not
// just the first.
func TestSingleSeparatorChar_MultiCopy(t *testing.T) {
	w, err := New(WithSeparator(NewSingleSeparatorChar('|')))
	require.NoError(t, err)

	cover := words(300)
	addRes := w.Add(cover, []byte("hi"), false)
	require.True(t, addRes.IsSuccess())

	marked, ok := addRes.Value()
	require.True(t, ok)

	getRes := w.Get(marked, false, false)
	require.True(t, getRes.IsSuccess())

	values, ok := getRes.Value()
	require.True(t, ok)
	require.Greater(t, len(values), 1, "cover should hold more than one copy")

	for _, v := range values {
		require.Equal(t, []byte("hi"), v.Bytes())
	}
}

func TestSingleSeparatorChar_OversizedWarning(t *testing.T) {
	w, err := New(WithSeparator(NewSingleSeparatorChar('|')))
	require.NoError(t, err)

	cover := "two words"
	res := w.Add(cover, []byte("a very long watermark payload that needs many characters"), false)
	require.True(t, res.IsWarning())

	_, ok := res.Value()
	require.True(t, ok)
}

// TestSingleSeparatorChar_TruncatedCover exercises extraction from a cover
// cut in half; it makes no assertion on the resulting status.
func TestSingleSeparatorChar_TruncatedCover(t *testing.T) {
	w, err := New(WithSeparator(NewSingleSeparatorChar('|')))
	require.NoError(t, err)

	cover := words(60)
	addRes := w.Add(cover, []byte("hi"), false)
	marked, ok := addRes.Value()
	require.True(t, ok)

	truncated := []rune(marked)
	truncated = truncated[:len(truncated)/2]

	getRes := w.Get(string(truncated), true, true)
	_ = getRes.Status()
}

func TestStartEndSeparatorChars_RoundTrip(t *testing.T) {
	w, err := New(WithSeparator(NewStartEndSeparatorChars('<', '>')))
	require.NoError(t, err)

	cover := words(60)
	addRes := w.Add(cover, []byte("hello"), false)
	require.True(t, addRes.IsSuccess() || addRes.IsWarning())

	marked, ok := addRes.Value()
	require.True(t, ok)
	require.NotEqual(t, cover, marked)

	getRes := w.Get(marked, true, true)
	require.True(t, getRes.IsSuccess())

	values, ok := getRes.Value()
	require.True(t, ok)
	require.Len(t, values, 1)
	require.Equal(t, []byte("hello"), values[0].Bytes())
}

// TestStartEndSeparatorChars_MultiCopy mirrors
// TestSingleSeparatorChar_MultiCopy for the other non-default strategy:
// every copy is self-delimited by its own start/end pair, so all copies
// must extract independently of where the previous one ended.
func TestStartEndSeparatorChars_MultiCopy(t *testing.T) {
	w, err := New(WithSeparator(NewStartEndSeparatorChars('<', '>')))
	require.NoError(t, err)

	cover := words(300)
	addRes := w.Add(cover, []byte("hi"), false)
	require.True(t, addRes.IsSuccess())

	marked, ok := addRes.Value()
	require.True(t, ok)

	getRes := w.Get(marked, false, false)
	require.True(t, getRes.IsSuccess())

	values, ok := getRes.Value()
	require.True(t, ok)
	require.Greater(t, len(values), 1, "cover should hold more than one copy")

	for _, v := range values {
		require.Equal(t, []byte("hi"), v.Bytes())
	}
}

func TestStartEndSeparatorChars_OversizedWarning(t *testing.T) {
	w, err := New(WithSeparator(NewStartEndSeparatorChars('<', '>')))
	require.NoError(t, err)

	cover := "two words"
	res := w.Add(cover, []byte("a very long watermark payload that needs many characters"), false)
	require.True(t, res.IsWarning())

	_, ok := res.Value()
	require.True(t, ok)
}

// TestStartEndSeparatorChars_TruncatedCover exercises extraction from a
// cover cut in half; it makes no assertion on the resulting status.
func TestStartEndSeparatorChars_TruncatedCover(t *testing.T) {
	w, err := New(WithSeparator(NewStartEndSeparatorChars('<', '>')))
	require.NoError(t, err)

	cover := words(60)
	addRes := w.Add(cover, []byte("hi"), false)
	marked, ok := addRes.Value()
	require.True(t, ok)

	truncated := []rune(marked)
	truncated = truncated[:len(truncated)/2]

	getRes := w.Get(string(truncated), true, true)
	_ = getRes.Status()
}
