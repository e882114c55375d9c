package transcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitsPerByte_DefaultAlphabet(t *testing.T) {
	require.Equal(t, 4, DigitsPerByte(DefaultAlphabet.Base()))
}

func TestAlphabet_Validate(t *testing.T) {
	require.NoError(t, DefaultAlphabet.Validate())
	require.Error(t, Alphabet{'a'}.Validate())
	require.Error(t, Alphabet{}.Validate())
}

func TestEncodeDecode_RoundTrip_AllByteValues(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	encoded := Encode(DefaultAlphabet, data)
	require.Len(t, encoded, 256*4)

	decoded, warnings := Decode(DefaultAlphabet, encoded)
	require.Empty(t, warnings)
	require.Equal(t, data, decoded)
}

func TestEncode_ScenarioS1(t *testing.T) {
	data := []byte{0x00, 0x01, 0x0F, 0x41, 0x62, 0xAA, 0xF0, 0xFE, 0xFF, 0x42}
	encoded := Encode(DefaultAlphabet, data)
	require.Len(t, encoded, 40)

	a := DefaultAlphabet
	require.Equal(t, []rune{a[0], a[0], a[0], a[0]}, encoded[0:4])
	require.Equal(t, []rune{a[1], a[0], a[0], a[0]}, encoded[4:8])

	decoded, warnings := Decode(DefaultAlphabet, encoded)
	require.Empty(t, warnings)
	require.Equal(t, data, decoded)
}

func TestDecode_TrailingPartialChunkDropped(t *testing.T) {
	encoded := Encode(DefaultAlphabet, []byte{0x41})
	decoded, warnings := Decode(DefaultAlphabet, encoded[:len(encoded)-1])
	require.Empty(t, warnings)
	require.Empty(t, decoded)
}

func TestDecode_NonAlphabetCharStopsChunk(t *testing.T) {
	encoded := Encode(DefaultAlphabet, []byte{0x01, 0x02})
	encoded[4] = 'x'
	decoded, warnings := Decode(DefaultAlphabet, encoded)
	require.Empty(t, warnings)
	require.Equal(t, []byte{0x01}, decoded)
}

func TestEncode_Empty(t *testing.T) {
	require.Empty(t, Encode(DefaultAlphabet, nil))
}
