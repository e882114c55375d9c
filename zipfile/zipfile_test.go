package zipfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type zipEntry struct {
	name    string
	content []byte
}

// buildZip assembles a multi-entry, store-method (uncompressed) ZIP
// archive with no pre-existing extra fields, for use as test fixtures.
func buildZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()

	zf := &ZipFile{}
	for _, e := range entries {
		zf.LocalFiles = append(zf.LocalFiles, LocalFileHeader{
			VersionNeeded:    20,
			CompressedSize:   uint32(len(e.content)),
			UncompressedSize: uint32(len(e.content)),
			FileName:         e.name,
			Data:             e.content,
		})
		zf.CentralDirectory = append(zf.CentralDirectory, CentralDirectoryEntry{
			VersionMadeBy:    20,
			VersionNeeded:    20,
			CompressedSize:   uint32(len(e.content)),
			UncompressedSize: uint32(len(e.content)),
			FileName:         e.name,
		})
	}

	return zf.Serialize()
}

// buildMinimalZip assembles a single-entry ZIP archive, for use as test
// fixtures.
func buildMinimalZip(t *testing.T, fileName string, content []byte) []byte {
	t.Helper()
	return buildZip(t, zipEntry{name: fileName, content: content})
}

func TestParseSerialize_RoundTrip(t *testing.T) {
	data := buildMinimalZip(t, "hello.txt", []byte("hello world"))

	zf, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, zf.LocalFiles, 1)
	require.Equal(t, "hello.txt", zf.LocalFiles[0].FileName)
	require.Equal(t, []byte("hello world"), zf.LocalFiles[0].Data)

	out := zf.Serialize()
	require.Equal(t, data, out)
}

func TestAddGetRemove_RoundTrip(t *testing.T) {
	data := buildMinimalZip(t, "a.txt", []byte("payload contents"))

	addRes := Add(data, []byte("hi"))
	require.True(t, addRes.IsSuccess())
	marked, ok := addRes.Value()
	require.True(t, ok)

	containsRes := Contains(marked)
	found, ok := containsRes.Value()
	require.True(t, ok)
	require.True(t, found)

	getRes := Get(marked, true, true)
	values, ok := getRes.Value()
	require.True(t, ok)
	require.Len(t, values, 1)
	require.Equal(t, []byte("hi"), values[0].Bytes())

	removeRes := Remove(marked)
	out, ok := removeRes.Value()
	require.True(t, ok)
	require.Len(t, out.Removed, 1)
	require.Equal(t, []byte("hi"), out.Removed[0].Bytes())

	containsAfter := Contains(out.Data)
	foundAfter, _ := containsAfter.Value()
	require.False(t, foundAfter)
}

func TestParse_InvalidMagic(t *testing.T) {
	_, err := Parse([]byte{0x00, 0x00, 0x00, 0x00})
	require.Error(t, err)
}

func TestAdd_OversizedHeaderFailsWithoutMutation(t *testing.T) {
	data := buildMinimalZip(t, "a.txt", []byte("x"))

	hugePayload := make([]byte, maxExtraFieldListLen+10)
	res := Add(data, hugePayload)
	require.True(t, res.IsError())

	_, ok := res.Value()
	require.False(t, ok, "Add must not return a value on a whole-archive failure")
}

// TestAdd_OneOversizedHeaderFailsWholeArchive exercises the case a
// single-header fixture can't: with two local file headers where only one
// is already near the extra-field capacity, Add must fail the entire
// operation and leave data byte-for-byte unchanged, rather than embedding
// the watermark in the other header and returning a partially-mutated
// archive.
func TestAdd_OneOversizedHeaderFailsWholeArchive(t *testing.T) {
	// Pad the first entry's local file header with an existing extra
	// field that nearly fills the 65535-byte capacity, so adding even a
	// small watermark payload pushes it over.
	nearCapacity := ExtraField{ID: 0x1234, Data: make([]byte, maxExtraFieldListLen-6)}

	zf := &ZipFile{
		LocalFiles: []LocalFileHeader{
			{
				VersionNeeded:    20,
				CompressedSize:   1,
				UncompressedSize: 1,
				FileName:         "full.bin",
				ExtraFields:      []ExtraField{nearCapacity},
				Data:             []byte("x"),
			},
			{
				VersionNeeded:    20,
				CompressedSize:   1,
				UncompressedSize: 1,
				FileName:         "room.bin",
				Data:             []byte("y"),
			},
		},
		CentralDirectory: []CentralDirectoryEntry{
			{VersionMadeBy: 20, VersionNeeded: 20, CompressedSize: 1, UncompressedSize: 1, FileName: "full.bin"},
			{VersionMadeBy: 20, VersionNeeded: 20, CompressedSize: 1, UncompressedSize: 1, FileName: "room.bin"},
		},
	}
	data := zf.Serialize()
	original := append([]byte(nil), data...)

	res := Add(data, []byte("hi"))
	require.True(t, res.IsError())

	_, ok := res.Value()
	require.False(t, ok)
	require.Equal(t, original, data, "Add must not mutate its input even when only one header overflows")

	// "room.bin"'s header had plenty of space; confirm it was NOT
	// watermarked despite "full.bin" being the one that overflowed.
	containsRes := Contains(data)
	found, ok := containsRes.Value()
	require.True(t, ok)
	require.False(t, found)
}
