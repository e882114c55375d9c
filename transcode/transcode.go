package transcode

import "github.com/arloliu/innamark/errs"

// Encode maps each byte of data to DigitsPerByte(alphabet.Base()) runes of
// alphabet, least-significant-digit first. For the default 4-character
// alphabet this emits exactly 4 runes per input byte.
//
// Encode never fails: every byte value 0..255 fits in digitsPerByte
// base-b digits as long as base >= 2, which Alphabet.Validate enforces at
// construction time for the codecs built on top of this package.
func Encode(alphabet Alphabet, data []byte) []rune {
	base := alphabet.Base()
	digitsPerByte := DigitsPerByte(base)

	out := make([]rune, 0, len(data)*digitsPerByte)
	for _, v := range data {
		n := int(v)
		for i := 0; i < digitsPerByte; i++ {
			out = append(out, alphabet[n%base])
			n /= base
		}
		if n != 0 {
			// Self-check: every byte value must fit in digitsPerByte
			// base-b digits. Reaching here means base < 2, a bug in the
			// caller's alphabet validation.
			panic("transcode: byte did not fit in digitsPerByte digits, alphabet base too small")
		}
	}
	return out
}

// Decode reconstructs the byte sequence encoded by Encode. chars is chunked
// into groups of DigitsPerByte(alphabet.Base()); a trailing partial chunk is
// dropped. Any character outside the alphabet aborts decoding of the
// remaining input immediately (the caller is expected to have already
// isolated a single watermark's character run before calling Decode).
//
// A chunk that reconstructs to a value outside 0..255 is skipped and
// reported as a DecodingInvalidByteWarning; decoding continues with the
// next chunk.
func Decode(alphabet Alphabet, chars []rune) ([]byte, []error) {
	base := alphabet.Base()
	digitsPerByte := DigitsPerByte(base)

	nChunks := len(chars) / digitsPerByte
	out := make([]byte, 0, nChunks)
	var warnings []error

	for c := 0; c < nChunks; c++ {
		chunk := chars[c*digitsPerByte : (c+1)*digitsPerByte]

		value := 0
		multiplier := 1
		ok := true
		for _, r := range chunk {
			idx := alphabet.Index(r)
			if idx < 0 {
				ok = false
				break
			}
			value += idx * multiplier
			multiplier *= base
		}
		if !ok {
			// Not all alphabet chars: the caller mis-isolated the run.
			// Stop, since positions after this point are unreliable.
			break
		}

		if value < 0 || value > 255 {
			warnings = append(warnings, &errs.DecodingInvalidByteWarning{Value: value})
			continue
		}

		out = append(out, byte(value))
	}

	return out, warnings
}
