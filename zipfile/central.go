package zipfile

import "github.com/arloliu/innamark/errs"

const (
	centralDirectorySignature      uint32 = 0x02014b50
	endOfCentralDirectorySignature uint32 = 0x06054b50
	centralDirectoryEntryFixedLen         = 46
	endOfCentralDirectoryFixedLen         = 22
)

// CentralDirectoryEntry mirrors one Central Directory record. Its
// ExtraField is preserved verbatim (spec.md §4.4: watermarking never
// touches Central-Directory extra fields); only LocalHeaderOffset is
// rewritten, to keep it consistent with any local-file-header length
// changes upstream.
type CentralDirectoryEntry struct {
	VersionMadeBy     uint16
	VersionNeeded     uint16
	Flags             uint16
	Method            uint16
	ModTime           uint16
	ModDate           uint16
	CRC32             uint32
	CompressedSize    uint32
	UncompressedSize  uint32
	DiskNumberStart   uint16
	InternalAttrs     uint16
	ExternalAttrs     uint32
	LocalHeaderOffset uint32
	FileName          string
	ExtraField        []byte
	Comment           string
}

// EndOfCentralDirectory mirrors the EOCD record. CDSize and CDOffset are
// recomputed on every Serialize to stay consistent with the rewritten
// Central Directory.
type EndOfCentralDirectory struct {
	DiskNumber        uint16
	CDStartDisk       uint16
	CDRecordsThisDisk uint16
	CDRecordsTotal    uint16
	CDSize            uint32
	CDOffset          uint32
	Comment           string
}

func parseCentralDirectoryEntry(buf []byte) (CentralDirectoryEntry, int, error) {
	if len(buf) < centralDirectoryEntryFixedLen {
		return CentralDirectoryEntry{}, 0, &errs.InvalidMagicBytesError{Offset: 0, Got: truncatedMagic(buf)}
	}

	var e CentralDirectoryEntry
	e.VersionMadeBy = le16(buf[4:])
	e.VersionNeeded = le16(buf[6:])
	e.Flags = le16(buf[8:])
	e.Method = le16(buf[10:])
	e.ModTime = le16(buf[12:])
	e.ModDate = le16(buf[14:])
	e.CRC32 = le32(buf[16:])
	e.CompressedSize = le32(buf[20:])
	e.UncompressedSize = le32(buf[24:])
	nameLen := int(le16(buf[28:]))
	extraLen := int(le16(buf[30:]))
	commentLen := int(le16(buf[32:]))
	e.DiskNumberStart = le16(buf[34:])
	e.InternalAttrs = le16(buf[36:])
	e.ExternalAttrs = le32(buf[38:])
	e.LocalHeaderOffset = le32(buf[42:])

	pos := centralDirectoryEntryFixedLen
	total := nameLen + extraLen + commentLen
	if len(buf) < pos+total {
		return CentralDirectoryEntry{}, 0, &errs.InvalidMagicBytesError{Offset: pos, Got: truncatedMagic(buf)}
	}

	e.FileName = string(buf[pos : pos+nameLen])
	pos += nameLen
	e.ExtraField = append([]byte(nil), buf[pos:pos+extraLen]...)
	pos += extraLen
	e.Comment = string(buf[pos : pos+commentLen])
	pos += commentLen

	return e, pos, nil
}

func serializeCentralDirectoryEntry(e CentralDirectoryEntry) []byte {
	nameBytes := []byte(e.FileName)
	commentBytes := []byte(e.Comment)

	var header [centralDirectoryEntryFixedLen]byte
	putLE32(header[0:], centralDirectorySignature)
	putLE16(header[4:], e.VersionMadeBy)
	putLE16(header[6:], e.VersionNeeded)
	putLE16(header[8:], e.Flags)
	putLE16(header[10:], e.Method)
	putLE16(header[12:], e.ModTime)
	putLE16(header[14:], e.ModDate)
	putLE32(header[16:], e.CRC32)
	putLE32(header[20:], e.CompressedSize)
	putLE32(header[24:], e.UncompressedSize)
	putLE16(header[28:], uint16(len(nameBytes)))
	putLE16(header[30:], uint16(len(e.ExtraField)))
	putLE16(header[32:], uint16(len(commentBytes)))
	putLE16(header[34:], e.DiskNumberStart)
	putLE16(header[36:], e.InternalAttrs)
	putLE32(header[38:], e.ExternalAttrs)
	putLE32(header[42:], e.LocalHeaderOffset)

	out := make([]byte, 0, centralDirectoryEntryFixedLen+len(nameBytes)+len(e.ExtraField)+len(commentBytes))
	out = append(out, header[:]...)
	out = append(out, nameBytes...)
	out = append(out, e.ExtraField...)
	out = append(out, commentBytes...)
	return out
}

func parseEOCD(buf []byte) (EndOfCentralDirectory, int, error) {
	if len(buf) < endOfCentralDirectoryFixedLen {
		return EndOfCentralDirectory{}, 0, &errs.InvalidMagicBytesError{Offset: 0, Got: truncatedMagic(buf)}
	}

	var e EndOfCentralDirectory
	e.DiskNumber = le16(buf[4:])
	e.CDStartDisk = le16(buf[6:])
	e.CDRecordsThisDisk = le16(buf[8:])
	e.CDRecordsTotal = le16(buf[10:])
	e.CDSize = le32(buf[12:])
	e.CDOffset = le32(buf[16:])
	commentLen := int(le16(buf[20:]))

	pos := endOfCentralDirectoryFixedLen
	if len(buf) < pos+commentLen {
		return EndOfCentralDirectory{}, 0, &errs.InvalidMagicBytesError{Offset: pos, Got: truncatedMagic(buf)}
	}
	e.Comment = string(buf[pos : pos+commentLen])
	pos += commentLen

	return e, pos, nil
}

func serializeEOCD(e EndOfCentralDirectory) []byte {
	commentBytes := []byte(e.Comment)

	var header [endOfCentralDirectoryFixedLen]byte
	putLE32(header[0:], endOfCentralDirectorySignature)
	putLE16(header[4:], e.DiskNumber)
	putLE16(header[6:], e.CDStartDisk)
	putLE16(header[8:], e.CDRecordsThisDisk)
	putLE16(header[10:], e.CDRecordsTotal)
	putLE32(header[12:], e.CDSize)
	putLE32(header[16:], e.CDOffset)
	putLE16(header[20:], uint16(len(commentBytes)))

	out := make([]byte, 0, endOfCentralDirectoryFixedLen+len(commentBytes))
	out = append(out, header[:]...)
	out = append(out, commentBytes...)
	return out
}
