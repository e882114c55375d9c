package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_EmptyIsSuccess(t *testing.T) {
	s := New()
	require.True(t, s.IsSuccess())
	require.False(t, s.IsWarning())
	require.False(t, s.IsError())
	require.Nil(t, s.FirstError())
}

func TestStatus_KindPrecedence(t *testing.T) {
	s := New().AddSuccess("src", "ok").AddWarning("src", errors.New("careful"))
	require.True(t, s.IsWarning())
	require.False(t, s.IsError())

	s.AddError("src", errors.New("boom"))
	require.True(t, s.IsError())
	require.Equal(t, Error, s.Kind())
}

func TestStatus_FirstError(t *testing.T) {
	want := errors.New("first")
	s := New().AddWarning("a", errors.New("w")).AddError("b", want).AddError("c", errors.New("second"))
	require.Equal(t, want, s.FirstError())
}

func TestStatus_Append(t *testing.T) {
	a := New().AddSuccess("a", "done")
	b := New().AddWarning("b", errors.New("careful"))
	a.Append(b)

	require.Len(t, a.Events(), 2)
	require.True(t, a.IsWarning())
}

func TestResult_IntoAndValue(t *testing.T) {
	r := Into(New().AddSuccess("src", "ok"), "hello")
	v, ok := r.Value()
	require.True(t, ok)
	require.Equal(t, "hello", v)
	require.True(t, r.HasValue())
	require.True(t, r.IsSuccess())
}

func TestResult_WithoutValue(t *testing.T) {
	r := WithoutValue[string](New().AddError("src", errors.New("fail")))
	_, ok := r.Value()
	require.False(t, ok)
	require.False(t, r.HasValue())
	require.True(t, r.IsError())
}
