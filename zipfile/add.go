package zipfile

import (
	"fmt"

	"github.com/arloliu/innamark/errs"
	"github.com/arloliu/innamark/status"
)

// maxExtraFieldListLen is the largest value a local file header's 16-bit
// extra-field-length field can hold.
const maxExtraFieldListLen = 0xFFFF

// Add appends a WatermarkFieldID extra field carrying payload to every
// Local File Header in data, per spec.md §4.4 "Add".
//
// Per spec.md §7, an oversized extra field is an Input-shape error, not a
// capacity warning: every header's prospective extra-field total is
// checked before any header is touched, and if any one of them would
// exceed 65535 bytes, Add returns OversizedHeaderError and data is
// returned unchanged — no partial mutation.
func Add(data []byte, payload []byte) status.Result[[]byte] {
	st := status.New()

	zf, err := Parse(data)
	if err != nil {
		st.AddError("zipfile.add", err)
		return status.WithoutValue[[]byte](st)
	}

	if len(zf.LocalFiles) == 0 {
		st.AddError("zipfile.add", errs.ErrNoLocalFileHeaders)
		return status.WithoutValue[[]byte](st)
	}

	field := ExtraField{ID: WatermarkFieldID, Data: payload}
	for _, lf := range zf.LocalFiles {
		total := lf.ExtraFieldsLen() + field.Len()
		if total > maxExtraFieldListLen {
			st.AddError("zipfile.add", &errs.OversizedHeaderError{TotalExtraLen: total})
			return status.WithoutValue[[]byte](st)
		}
	}

	for i := range zf.LocalFiles {
		lf := &zf.LocalFiles[i]
		lf.ExtraFields = append(lf.ExtraFields, ExtraField{ID: WatermarkFieldID, Data: append([]byte(nil), payload...)})
	}

	out := zf.Serialize()
	st.AddSuccess("zipfile.add", fmt.Sprintf("added watermark to %d file(s)", len(zf.LocalFiles)))

	return status.Into(st, out)
}
