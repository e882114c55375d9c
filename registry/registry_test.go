package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromExtension_Defaults(t *testing.T) {
	cases := map[string]FileType{
		"txt": Text,
		"md":  Text,
		"zip": Zip,
		"jar": Zip,
	}
	for ext, want := range cases {
		got, ok := FromExtension(ext)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestFromExtension_CaseInsensitiveAndDotTolerant(t *testing.T) {
	got, ok := FromExtension(".TXT")
	require.True(t, ok)
	require.Equal(t, Text, got)
}

func TestFromExtension_Unknown(t *testing.T) {
	_, ok := FromExtension("bin")
	require.False(t, ok)
}

func TestRegisterExtension_Overrides(t *testing.T) {
	RegisterExtension("log", Zip)
	RegisterExtension("log", Text)
	got, ok := FromExtension("log")
	require.True(t, ok)
	require.Equal(t, Text, got)
}
