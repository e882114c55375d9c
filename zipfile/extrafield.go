package zipfile

import "github.com/arloliu/innamark/errs"

// WatermarkFieldID is the reserved ZIP extra-field id Innamark watermarks
// are stored under (spec.md §4.4).
const WatermarkFieldID uint16 = 0x8777

// ExtraField is one (id, data) pair from a local file header's extra-field
// list.
type ExtraField struct {
	ID   uint16
	Data []byte
}

// Len returns the serialized size of the field: a 2-byte id, a 2-byte
// length, and the data itself.
func (f ExtraField) Len() int { return 4 + len(f.Data) }

func parseExtraFields(buf []byte) ([]ExtraField, error) {
	var fields []ExtraField

	pos := 0
	for pos+4 <= len(buf) {
		id := le16(buf[pos:])
		dataLen := int(le16(buf[pos+2:]))
		pos += 4

		if pos+dataLen > len(buf) {
			return nil, &errs.TruncatedExtraFieldError{Declared: dataLen, Remaining: len(buf) - pos}
		}

		fields = append(fields, ExtraField{ID: id, Data: append([]byte(nil), buf[pos:pos+dataLen]...)})
		pos += dataLen
	}

	return fields, nil
}

func extraFieldsLen(fields []ExtraField) int {
	total := 0
	for _, f := range fields {
		total += f.Len()
	}
	return total
}

func serializeExtraFields(fields []ExtraField) []byte {
	buf := make([]byte, 0, extraFieldsLen(fields))
	for _, f := range fields {
		var header [4]byte
		putLE16(header[0:], f.ID)
		putLE16(header[2:], uint16(len(f.Data)))
		buf = append(buf, header[:]...)
		buf = append(buf, f.Data...)
	}
	return buf
}
