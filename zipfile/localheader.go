package zipfile

import "github.com/arloliu/innamark/errs"

const (
	localFileHeaderSignature uint32 = 0x04034b50
	localFileHeaderFixedLen         = 30
)

// LocalFileHeader is one entry of a ZIP archive's local-file-header stream
// (spec.md §3 "ZIP cover"): a fixed-size prefix, a variable-length file
// name, a variable-length extra-field list, and the declared compressed
// data that follows. ExtraFields is the only part this module rewrites.
type LocalFileHeader struct {
	VersionNeeded    uint16
	Flags            uint16
	Method           uint16
	ModTime          uint16
	ModDate          uint16
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	FileName         string
	ExtraFields      []ExtraField
	Data             []byte
}

// ExtraFieldsLen returns the serialized size of the header's current
// extra-field list.
func (lf *LocalFileHeader) ExtraFieldsLen() int { return extraFieldsLen(lf.ExtraFields) }

// ContainsWatermark reports whether lf has a WatermarkFieldID extra field.
func (lf *LocalFileHeader) ContainsWatermark() bool {
	for _, f := range lf.ExtraFields {
		if f.ID == WatermarkFieldID {
			return true
		}
	}
	return false
}

func parseLocalFileHeader(buf []byte) (LocalFileHeader, int, error) {
	if len(buf) < localFileHeaderFixedLen {
		return LocalFileHeader{}, 0, &errs.InvalidMagicBytesError{Offset: 0, Got: truncatedMagic(buf)}
	}

	var lf LocalFileHeader
	lf.VersionNeeded = le16(buf[4:])
	lf.Flags = le16(buf[6:])
	lf.Method = le16(buf[8:])
	lf.ModTime = le16(buf[10:])
	lf.ModDate = le16(buf[12:])
	lf.CRC32 = le32(buf[14:])
	lf.CompressedSize = le32(buf[18:])
	lf.UncompressedSize = le32(buf[22:])
	nameLen := int(le16(buf[26:]))
	extraLen := int(le16(buf[28:]))

	pos := localFileHeaderFixedLen
	if len(buf) < pos+nameLen+extraLen {
		return LocalFileHeader{}, 0, &errs.InvalidMagicBytesError{Offset: pos, Got: truncatedMagic(buf)}
	}

	lf.FileName = string(buf[pos : pos+nameLen])
	pos += nameLen

	fields, err := parseExtraFields(buf[pos : pos+extraLen])
	if err != nil {
		return LocalFileHeader{}, 0, err
	}
	lf.ExtraFields = fields
	pos += extraLen

	dataLen := int(lf.CompressedSize)
	if len(buf) < pos+dataLen {
		return LocalFileHeader{}, 0, &errs.InvalidMagicBytesError{Offset: pos, Got: truncatedMagic(buf)}
	}
	lf.Data = append([]byte(nil), buf[pos:pos+dataLen]...)
	pos += dataLen

	return lf, pos, nil
}

func serializeLocalFileHeader(lf LocalFileHeader) []byte {
	extra := serializeExtraFields(lf.ExtraFields)
	nameBytes := []byte(lf.FileName)

	var header [localFileHeaderFixedLen]byte
	putLE32(header[0:], localFileHeaderSignature)
	putLE16(header[4:], lf.VersionNeeded)
	putLE16(header[6:], lf.Flags)
	putLE16(header[8:], lf.Method)
	putLE16(header[10:], lf.ModTime)
	putLE16(header[12:], lf.ModDate)
	putLE32(header[14:], lf.CRC32)
	putLE32(header[18:], lf.CompressedSize)
	putLE32(header[22:], lf.UncompressedSize)
	putLE16(header[26:], uint16(len(nameBytes)))
	putLE16(header[28:], uint16(len(extra)))

	out := make([]byte, 0, localFileHeaderFixedLen+len(nameBytes)+len(extra)+len(lf.Data))
	out = append(out, header[:]...)
	out = append(out, nameBytes...)
	out = append(out, extra...)
	out = append(out, lf.Data...)
	return out
}

func truncatedMagic(buf []byte) uint32 {
	if len(buf) < 4 {
		return 0
	}
	return le32(buf)
}
