package tag

import "github.com/arloliu/innamark/errs"

// Builder carries a text payload and a set of flags describing which
// InnamarkTag variant Finish should produce (spec.md §4.3 "Builder
// semantics").
type Builder struct {
	text       string
	sized      bool
	compressed bool
	crc32      bool
	sha3256    bool
}

// NewBuilder starts a Builder for the given text payload.
func NewBuilder(text string) *Builder {
	return &Builder{text: text}
}

// Sized requests the length-prefixed form of the chosen variant.
func (b *Builder) Sized() *Builder {
	b.sized = true
	return b
}

// Compressed requests the deflate-compressed form of the chosen variant.
func (b *Builder) Compressed() *Builder {
	b.compressed = true
	return b
}

// CRC32 requests a CRC-32 integrity check. At most one of CRC32 and
// SHA3256 may be requested; Finish reports an error otherwise.
func (b *Builder) CRC32() *Builder {
	b.crc32 = true
	return b
}

// SHA3256 requests a SHA3-256 integrity check. At most one of CRC32 and
// SHA3256 may be requested; Finish reports an error otherwise.
func (b *Builder) SHA3256() *Builder {
	b.sha3256 = true
	return b
}

// Finish picks the variant named by the builder's flag combination and
// returns the resulting Tag.
func (b *Builder) Finish() (Tag, error) {
	if b.crc32 && b.sha3256 {
		return Tag{}, errs.ErrConflictingHashKinds
	}

	variant := variantFor(b.sized, b.compressed, b.crc32, b.sha3256)

	return Tag{Variant: variant, Content: []byte(b.text)}, nil
}

// Small builds the smallest reasonable Tag for text: CompressedRaw if
// deflating text shrinks it, otherwise Raw. It carries no length prefix or
// hash, matching spec.md §4.3's small(text) factory.
func Small(text string) (Tag, error) {
	content := []byte(text)

	compressed, err := deflate(content)
	if err != nil {
		return Tag{}, err
	}

	if len(compressed) < len(content) {
		return Tag{Variant: CompressedRaw, Content: content}, nil
	}

	return Tag{Variant: Raw, Content: content}, nil
}
