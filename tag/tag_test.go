package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariant_TagByteUniqueness(t *testing.T) {
	seen := map[byte]Variant{}
	for _, v := range AllVariants {
		if other, ok := seen[byte(v)]; ok {
			t.Fatalf("tag byte 0x%02X shared by %s and %s", byte(v), v, other)
		}
		seen[byte(v)] = v
	}
	require.Len(t, seen, len(AllVariants))
}

func TestTag_RoundTrip_AllVariants(t *testing.T) {
	content := []byte("The quick brown fox jumps over the lazy dog")

	for _, v := range AllVariants {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			original := New(v, content)

			wire, err := original.Serialize()
			require.NoError(t, err)
			require.Equal(t, byte(v), wire[0])

			parsed, err := Parse(wire)
			require.NoError(t, err)
			require.Equal(t, v, parsed.Variant)
			require.Equal(t, content, parsed.Content)
		})
	}
}

func TestTag_RoundTrip_EmptyContent(t *testing.T) {
	for _, v := range AllVariants {
		wire, err := New(v, nil).Serialize()
		require.NoError(t, err)

		parsed, err := Parse(wire)
		require.NoError(t, err)
		require.Empty(t, parsed.Content)
	}
}

func TestParse_UnknownTagByte(t *testing.T) {
	_, err := Parse([]byte{0xFF, 1, 2, 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown innamark tag byte")
}

func TestParse_SizeMismatch(t *testing.T) {
	wire, err := New(Sized, []byte("hello")).Serialize()
	require.NoError(t, err)

	// Corrupt the declared length field (bytes 1..4).
	wire[1] = 0xFF

	_, err = Parse(wire)
	require.Error(t, err)
	require.Contains(t, err.Error(), "declares size")
}

func TestParse_ChecksumMismatch(t *testing.T) {
	wire, err := New(CRC32, []byte("hello")).Serialize()
	require.NoError(t, err)

	wire[len(wire)-1] ^= 0xFF // corrupt last content byte

	_, err = Parse(wire)
	require.Error(t, err)
	require.Contains(t, err.Error(), "checksum mismatch")
}

func TestParse_TruncatedHashed(t *testing.T) {
	_, err := Parse([]byte{byte(SHA3256), 1, 2, 3})
	require.Error(t, err)
}

func TestParse_EmptyBytes(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
}

func TestBuilder_Finish_PicksVariant(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Builder) *Builder
		want  Variant
	}{
		{"raw", func(b *Builder) *Builder { return b }, Raw},
		{"sized", func(b *Builder) *Builder { return b.Sized() }, Sized},
		{"crc32", func(b *Builder) *Builder { return b.CRC32() }, CRC32},
		{"sized+crc32", func(b *Builder) *Builder { return b.Sized().CRC32() }, SizedCRC32},
		{"compressed+sized+sha3256", func(b *Builder) *Builder { return b.Compressed().Sized().SHA3256() }, CompressedSizedSHA3256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build(NewBuilder("payload"))
			tag, err := b.Finish()
			require.NoError(t, err)
			require.Equal(t, tt.want, tag.Variant)
		})
	}
}

func TestBuilder_Finish_RejectsBothHashes(t *testing.T) {
	_, err := NewBuilder("x").CRC32().SHA3256().Finish()
	require.Error(t, err)
}

func TestSmall_PicksCompressedWhenSmaller(t *testing.T) {
	text := ""
	for i := 0; i < 200; i++ {
		text += "aaaaaaaaaa"
	}

	tg, err := Small(text)
	require.NoError(t, err)
	require.Equal(t, CompressedRaw, tg.Variant)
}

func TestSmall_PicksRawWhenNotSmaller(t *testing.T) {
	tg, err := Small("x")
	require.NoError(t, err)
	require.Equal(t, Raw, tg.Variant)
}
