package zipfile

import "github.com/arloliu/innamark/status"

// Contains reports whether any Local File Header in data carries a
// WatermarkFieldID extra field, per spec.md §4.4 "Contains".
func Contains(data []byte) status.Result[bool] {
	st := status.New()

	zf, err := Parse(data)
	if err != nil {
		st.AddError("zipfile.contains", err)
		return status.WithoutValue[bool](st)
	}

	found := false
	for _, lf := range zf.LocalFiles {
		if lf.ContainsWatermark() {
			found = true
			break
		}
	}

	st.AddSuccess("zipfile.contains", "parsed archive")
	return status.Into(st, found)
}
