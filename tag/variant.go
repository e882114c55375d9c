// Package tag implements Component C: the InnamarkTag wire format
// (spec.md §4.3) — a tag-byte-prefixed watermark body with optional length
// prefix, integrity check, and deflate compression.
package tag

import "fmt"

// Variant names one of the twelve closed InnamarkTag variants by its
// on-wire tag byte.
type Variant uint8

// The full, closed set of variants. Tag byte uniqueness across this set is
// an invariant enforced by TestVariant_TagByteUniqueness.
const (
	Raw                    Variant = 0x00
	CompressedRaw          Variant = 0x01
	Sized                  Variant = 0x02
	CompressedSized        Variant = 0x03
	CRC32                  Variant = 0x04
	CompressedCRC32        Variant = 0x05
	SizedCRC32             Variant = 0x06
	CompressedSizedCRC32   Variant = 0x07
	SHA3256                Variant = 0x08
	CompressedSHA3256      Variant = 0x09
	SizedSHA3256           Variant = 0x0A
	CompressedSizedSHA3256 Variant = 0x0B
)

// HashKind names which integrity check, if any, a variant carries.
type HashKind uint8

const (
	HashNone HashKind = iota
	HashCRC32
	HashSHA3256
)

// layout describes the wire shape of one variant: whether it carries a
// u32-LE length prefix, whether its content is deflate-compressed, and
// which hash (if any) it carries.
type layout struct {
	Sized      bool
	Compressed bool
	Hash       HashKind
}

var variantLayouts = map[Variant]layout{
	Raw:                    {Sized: false, Compressed: false, Hash: HashNone},
	CompressedRaw:          {Sized: false, Compressed: true, Hash: HashNone},
	Sized:                  {Sized: true, Compressed: false, Hash: HashNone},
	CompressedSized:        {Sized: true, Compressed: true, Hash: HashNone},
	CRC32:                  {Sized: false, Compressed: false, Hash: HashCRC32},
	CompressedCRC32:        {Sized: false, Compressed: true, Hash: HashCRC32},
	SizedCRC32:             {Sized: true, Compressed: false, Hash: HashCRC32},
	CompressedSizedCRC32:   {Sized: true, Compressed: true, Hash: HashCRC32},
	SHA3256:                {Sized: false, Compressed: false, Hash: HashSHA3256},
	CompressedSHA3256:      {Sized: false, Compressed: true, Hash: HashSHA3256},
	SizedSHA3256:           {Sized: true, Compressed: false, Hash: HashSHA3256},
	CompressedSizedSHA3256: {Sized: true, Compressed: true, Hash: HashSHA3256},
}

// AllVariants lists every known variant, in tag-byte order.
var AllVariants = []Variant{
	Raw, CompressedRaw, Sized, CompressedSized,
	CRC32, CompressedCRC32, SizedCRC32, CompressedSizedCRC32,
	SHA3256, CompressedSHA3256, SizedSHA3256, CompressedSizedSHA3256,
}

func (v Variant) layout() (layout, bool) {
	l, ok := variantLayouts[v]
	return l, ok
}

// IsKnown reports whether v names a known variant.
func (v Variant) IsKnown() bool {
	_, ok := variantLayouts[v]
	return ok
}

func (v Variant) String() string {
	switch v {
	case Raw:
		return "Raw"
	case CompressedRaw:
		return "CompressedRaw"
	case Sized:
		return "Sized"
	case CompressedSized:
		return "CompressedSized"
	case CRC32:
		return "CRC32"
	case CompressedCRC32:
		return "CompressedCRC32"
	case SizedCRC32:
		return "SizedCRC32"
	case CompressedSizedCRC32:
		return "CompressedSizedCRC32"
	case SHA3256:
		return "SHA3256"
	case CompressedSHA3256:
		return "CompressedSHA3256"
	case SizedSHA3256:
		return "SizedSHA3256"
	case CompressedSizedSHA3256:
		return "CompressedSizedSHA3256"
	default:
		return fmt.Sprintf("Variant(0x%02X)", uint8(v))
	}
}

// variantFor picks the variant named by a builder's flag combination.
func variantFor(sized, compressed, crc32, sha3256 bool) Variant {
	for _, v := range AllVariants {
		l := variantLayouts[v]
		hashMatches := (l.Hash == HashCRC32) == crc32 && (l.Hash == HashSHA3256) == sha3256
		if l.Sized == sized && l.Compressed == compressed && hashMatches {
			return v
		}
	}
	// Unreachable: the 2x2x3 combinations above cover all 12 variants
	// exactly, and builder.Finish rejects crc32 && sha3256 before calling
	// this function.
	panic("tag: no variant matches the requested flag combination")
}
