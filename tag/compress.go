package tag

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/arloliu/innamark/errs"
)

// deflate compresses data using raw DEFLATE (no zlib wrapper) at
// compression level 9 (flate.BestCompression), as required by spec.md
// §4.3. It uses klauspost/compress/flate, the deflate implementation the
// rest of this pack's compression-heavy code reaches for instead of the
// standard library's compress/flate.
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// inflate reverses deflate. A malformed or truncated stream surfaces as an
// *errs.InflationError rather than the raw flate error, so callers can
// distinguish "this isn't a valid compressed tag" from other I/O failures.
func inflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, &errs.InflationError{Reason: err.Error()}
	}

	return out, nil
}
