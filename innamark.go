// Package innamark is the facade described in spec.md §4.5: a thin
// dispatcher that routes a cover to the text or zip codec by file
// extension (or an explicit override) and re-exposes each codec's add,
// contains, get, and remove operations under one name.
package innamark

import (
	"path"
	"strings"

	"github.com/arloliu/innamark/errs"
	"github.com/arloliu/innamark/registry"
	"github.com/arloliu/innamark/status"
	"github.com/arloliu/innamark/text"
	"github.com/arloliu/innamark/watermark"
	"github.com/arloliu/innamark/zipfile"
)

// defaultText is the module's default Watermarker: the four-space
// DefaultAlphabet, SkipInsertPosition framing, and DefaultPlacement. Its
// construction cannot fail — those defaults never overlap.
var defaultText, _ = text.New()

// TextAdd embeds payload into a plain-text cover using defaultText.
func TextAdd(cover string, payload []byte, wrap bool) status.Result[string] {
	return defaultText.Add(cover, payload, wrap)
}

// TextContains reports whether cover already holds watermark characters.
func TextContains(cover string) bool { return defaultText.Contains(cover) }

// TextGet extracts every watermark found in cover.
func TextGet(cover string, squash, singleWatermark bool) status.Result[[]watermark.Value] {
	return defaultText.Get(cover, squash, singleWatermark)
}

// TextGetString extracts the single most-frequent watermark as text.
func TextGetString(cover string) status.Result[string] { return defaultText.GetString(cover) }

// TextGetBytes extracts the single most-frequent watermark's raw bytes.
func TextGetBytes(cover string) status.Result[[]byte] { return defaultText.GetBytes(cover) }

// TextRemove replaces every watermark character in cover with an ASCII
// space.
func TextRemove(cover string) string { return defaultText.Remove(cover) }

// ZipAdd embeds payload into every Local File Header of a ZIP archive.
func ZipAdd(data []byte, payload []byte) status.Result[[]byte] { return zipfile.Add(data, payload) }

// ZipContains reports whether any Local File Header already carries a
// watermark extra field.
func ZipContains(data []byte) status.Result[bool] { return zipfile.Contains(data) }

// ZipGet concatenates the watermark payloads of every Local File Header.
func ZipGet(data []byte, squash, singleWatermark bool) status.Result[[]watermark.Value] {
	return zipfile.Get(data, squash, singleWatermark)
}

// ZipRemove deletes every watermark extra field from a ZIP archive.
func ZipRemove(data []byte) status.Result[zipfile.RemoveOutput] { return zipfile.Remove(data) }

// RemoveResult is the facade's unified Remove result: the rewritten cover
// bytes, plus any removed watermarks the underlying codec reports (the zip
// codec reports them; the text codec does not track what it erased).
type RemoveResult struct {
	Data    []byte
	Removed []watermark.Value
}

// resolveFileType derives the codec source should dispatch to from its
// extension, honoring an optional explicit override, per spec.md §4.5.
func resolveFileType(source string, explicit *registry.FileType) (registry.FileType, error) {
	ext := strings.TrimPrefix(path.Ext(source), ".")
	if ext == "" {
		if explicit != nil {
			return *explicit, nil
		}
		return 0, &errs.NoFileTypeError{Path: source}
	}

	derived, ok := registry.FromExtension(ext)
	if !ok {
		return 0, &errs.UnsupportedTypeError{Extension: ext}
	}

	if explicit != nil && *explicit != derived {
		return 0, &errs.WrongTypeError{Extension: ext, Expected: derived.String(), Explicit: explicit.String()}
	}

	return derived, nil
}

// Add dispatches to TextAdd or ZipAdd by source's resolved file type.
func Add(source string, data []byte, payload []byte, explicit *registry.FileType) status.Result[[]byte] {
	st := status.New()

	fileType, err := resolveFileType(source, explicit)
	if err != nil {
		st.AddError("innamark.add", err)
		return status.WithoutValue[[]byte](st)
	}

	if fileType == registry.Zip {
		return ZipAdd(data, payload)
	}

	return rewrapString(TextAdd(string(data), payload, false))
}

// Contains dispatches to TextContains or ZipContains by source's resolved
// file type.
func Contains(source string, data []byte, explicit *registry.FileType) status.Result[bool] {
	st := status.New()

	fileType, err := resolveFileType(source, explicit)
	if err != nil {
		st.AddError("innamark.contains", err)
		return status.WithoutValue[bool](st)
	}

	if fileType == registry.Zip {
		return ZipContains(data)
	}

	st.AddSuccess("innamark.contains", "parsed cover")
	return status.Into(st, TextContains(string(data)))
}

// Get dispatches to TextGet or ZipGet by source's resolved file type.
func Get(source string, data []byte, squash, singleWatermark bool, explicit *registry.FileType) status.Result[[]watermark.Value] {
	st := status.New()

	fileType, err := resolveFileType(source, explicit)
	if err != nil {
		st.AddError("innamark.get", err)
		return status.WithoutValue[[]watermark.Value](st)
	}

	if fileType == registry.Zip {
		return ZipGet(data, squash, singleWatermark)
	}

	return TextGet(string(data), squash, singleWatermark)
}

// Remove dispatches to TextRemove or ZipRemove by source's resolved file
// type, unifying both under RemoveResult.
func Remove(source string, data []byte, explicit *registry.FileType) status.Result[RemoveResult] {
	st := status.New()

	fileType, err := resolveFileType(source, explicit)
	if err != nil {
		st.AddError("innamark.remove", err)
		return status.WithoutValue[RemoveResult](st)
	}

	if fileType == registry.Zip {
		res := ZipRemove(data)
		out, ok := res.Value()
		if !ok {
			return status.WithoutValue[RemoveResult](res.Status())
		}
		return status.Into(res.Status(), RemoveResult{Data: out.Data, Removed: out.Removed})
	}

	cleaned := TextRemove(string(data))
	st.AddSuccess("innamark.remove", "removed watermark characters")
	return status.Into(st, RemoveResult{Data: []byte(cleaned)})
}

func rewrapString(res status.Result[string]) status.Result[[]byte] {
	s, ok := res.Value()
	if !ok {
		return status.WithoutValue[[]byte](res.Status())
	}
	return status.Into(res.Status(), []byte(s))
}
