// Package text implements Component B: the whitespace-substitution
// steganographic codec for plain-text covers (spec.md §4.2).
//
// A Watermarker is configured once, at construction, with an alphabet, a
// separator strategy, and a placement function — injected capabilities
// rather than subclasses, per spec.md §9 "Design Notes". Configuration is
// immutable thereafter; Add/Get/Remove are pure functions of their
// arguments.
package text

import (
	"github.com/arloliu/innamark/errs"
	"github.com/arloliu/innamark/internal/options"
	"github.com/arloliu/innamark/transcode"
)

// Watermarker places and extracts watermarks in plain-text covers.
type Watermarker struct {
	alphabet  transcode.Alphabet
	separator Separator
	placement PlacementFunc
}

// Option configures a Watermarker at construction time.
type Option = options.Option[*Watermarker]

// WithAlphabet overrides the default transcoding alphabet.
func WithAlphabet(a transcode.Alphabet) Option {
	return options.New(func(w *Watermarker) error {
		if err := a.Validate(); err != nil {
			return err
		}
		w.alphabet = a
		return nil
	})
}

// WithSeparator overrides the default separator strategy (SkipInsertPosition).
func WithSeparator(s Separator) Option {
	return options.NoError(func(w *Watermarker) { w.separator = s })
}

// WithPlacement overrides the default placement function (positions of
// ASCII space).
func WithPlacement(p PlacementFunc) Option {
	return options.NoError(func(w *Watermarker) { w.placement = p })
}

// New builds a Watermarker from opts, defaulting to the four-space
// DefaultAlphabet, SkipInsertPosition framing, and DefaultPlacement.
// It returns errs.ErrAlphabetOverlapsSeparator if the configured alphabet
// and separator strategy share a rune.
func New(opts ...Option) (*Watermarker, error) {
	w := &Watermarker{
		alphabet:  transcode.DefaultAlphabet,
		separator: NewSkipInsertPosition(),
		placement: DefaultPlacement,
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	if err := w.validate(); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Watermarker) validate() error {
	for _, sepChar := range w.separator.Chars() {
		if w.alphabet.Contains(sepChar) {
			return errs.ErrAlphabetOverlapsSeparator
		}
	}
	return nil
}

// fullAlphabetSet returns the set of runes the codec will not tolerate
// already present in a cover: the transcoding alphabet plus any separator
// runes (spec.md §4.2 step 1).
func (w *Watermarker) fullAlphabetSet() map[rune]bool {
	set := make(map[rune]bool, len(w.alphabet)+2)
	for _, r := range w.alphabet {
		set[r] = true
	}
	for _, r := range w.separator.Chars() {
		set[r] = true
	}
	return set
}
