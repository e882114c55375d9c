package tag

import (
	"bytes"

	"github.com/arloliu/innamark/errs"
)

// Tag is a watermark body wrapped in one of the twelve InnamarkTag
// variants. Content always holds the original, uncompressed payload;
// Serialize applies whichever compression/length/hash framing the Variant
// calls for, and Parse strips and validates it back off.
type Tag struct {
	Variant Variant
	Content []byte
}

// New builds a Tag for the given variant and content. It does not validate
// or serialize anything; use Serialize to produce wire bytes.
func New(variant Variant, content []byte) Tag {
	return Tag{Variant: variant, Content: content}
}

// Bytes returns the tag's decoded content. It implements watermark.Value.
func (t Tag) Bytes() []byte {
	return t.Content
}

// Serialize encodes t into its on-wire byte representation (spec.md §4.3).
func (t Tag) Serialize() ([]byte, error) {
	l, ok := t.Variant.layout()
	if !ok {
		return nil, &errs.UnknownTagError{Byte: byte(t.Variant)}
	}

	payload := t.Content
	if l.Compressed {
		compressed, err := deflate(t.Content)
		if err != nil {
			return nil, err
		}
		payload = compressed
	}

	var buf bytes.Buffer
	buf.WriteByte(byte(t.Variant))

	if l.Sized {
		var lenBytes [4]byte
		putUint32LE(lenBytes[:], uint32(len(t.Content))) //nolint:gosec
		buf.Write(lenBytes[:])
	}

	switch l.Hash {
	case HashCRC32:
		var crcBytes [4]byte
		putUint32LE(crcBytes[:], crc32Of(t.Content))
		buf.Write(crcBytes[:])
	case HashSHA3256:
		digest := sha3256Of(t.Content)
		buf.Write(digest[:])
	}

	buf.Write(payload)

	return buf.Bytes(), nil
}

// Parse decodes data into a validated Tag. Validation per spec.md §3/§4.3:
// the tag byte must name a known variant, a declared size (if any) must
// match the actual content size after decompression, and a stored hash (if
// any) must match the hash recomputed over the content.
func Parse(data []byte) (Tag, error) {
	if len(data) == 0 {
		return Tag{}, errs.ErrEmptyTagBytes
	}

	variant := Variant(data[0])
	l, ok := variant.layout()
	if !ok {
		return Tag{}, &errs.UnknownTagError{Byte: data[0]}
	}

	rest := data[1:]
	offset := 0

	var declaredLen uint32
	if l.Sized {
		if len(rest) < offset+4 {
			return Tag{}, errs.ErrTruncatedTag
		}
		declaredLen = getUint32LE(rest[offset : offset+4])
		offset += 4
	}

	var storedCRC uint32
	var storedSHA3 [32]byte
	switch l.Hash {
	case HashCRC32:
		if len(rest) < offset+4 {
			return Tag{}, errs.ErrTruncatedTag
		}
		storedCRC = getUint32LE(rest[offset : offset+4])
		offset += 4
	case HashSHA3256:
		if len(rest) < offset+32 {
			return Tag{}, errs.ErrTruncatedTag
		}
		copy(storedSHA3[:], rest[offset:offset+32])
		offset += 32
	}

	payload := rest[offset:]

	content := payload
	if l.Compressed {
		inflated, err := inflate(payload)
		if err != nil {
			return Tag{}, err
		}
		content = inflated
	}

	if l.Sized && declaredLen != uint32(len(content)) { //nolint:gosec
		return Tag{}, &errs.SizeMismatchError{Declared: declaredLen, Actual: uint32(len(content))} //nolint:gosec
	}

	switch l.Hash {
	case HashCRC32:
		if crc32Of(content) != storedCRC {
			return Tag{}, &errs.ChecksumMismatchError{Variant: variant.String()}
		}
	case HashSHA3256:
		if sha3256Of(content) != storedSHA3 {
			return Tag{}, &errs.ChecksumMismatchError{Variant: variant.String()}
		}
	}

	return Tag{Variant: variant, Content: content}, nil
}

// Validate re-runs Parse(t.Serialize()) and reports whether it round-trips
// without error. It is mainly useful for tests and for callers that built
// a Tag by hand (via New) instead of via Builder.
func (t Tag) Validate() error {
	bytesOut, err := t.Serialize()
	if err != nil {
		return err
	}
	_, err = Parse(bytesOut)
	return err
}
