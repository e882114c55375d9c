package zipfile

import (
	"fmt"

	"github.com/arloliu/innamark/status"
	"github.com/arloliu/innamark/watermark"
)

// RemoveOutput is the Remove result: the rewritten archive bytes plus the
// payloads that were removed, in the stream order they were found.
type RemoveOutput struct {
	Data    []byte
	Removed []watermark.Value
}

// Remove deletes every WatermarkFieldID extra field from every Local File
// Header, per spec.md §4.4 "Remove". The Central Directory and EOCD are
// rewritten so offsets stay consistent with the shortened headers; every
// other field is preserved verbatim.
func Remove(data []byte) status.Result[RemoveOutput] {
	st := status.New()

	zf, err := Parse(data)
	if err != nil {
		st.AddError("zipfile.remove", err)
		return status.WithoutValue[RemoveOutput](st)
	}

	var removed [][]byte
	for i := range zf.LocalFiles {
		lf := &zf.LocalFiles[i]

		kept := lf.ExtraFields[:0:0]
		for _, f := range lf.ExtraFields {
			if f.ID == WatermarkFieldID {
				removed = append(removed, append([]byte(nil), f.Data...))
				continue
			}
			kept = append(kept, f)
		}
		lf.ExtraFields = kept
	}

	out := zf.Serialize()

	values := make([]watermark.Value, len(removed))
	for i, b := range removed {
		values[i] = watermark.New(b)
	}

	st.AddSuccess("zipfile.remove", fmt.Sprintf("removed %d watermark(s)", len(removed)))

	return status.Into(st, RemoveOutput{Data: out, Removed: values})
}
