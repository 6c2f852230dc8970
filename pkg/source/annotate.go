package source

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"notegen/pkg/furigana"
	"notegen/pkg/kana"
)

// Annotator adds furigana to plain sentences using morphological
// analysis, for the sentence-furigana marker.
type Annotator struct {
	t *tokenizer.Tokenizer
}

// NewAnnotator creates a tokenizer instance. The dictionary load is
// expensive, so callers should reuse one Annotator.
func NewAnnotator() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Annotator{t: t}, nil
}

// Annotate returns the sentence in bracket furigana notation: each token
// with a dictionary reading gets that reading distributed over its
// surface form. Tokens written entirely in kana, and tokens the
// dictionary has no reading for, pass through unannotated.
func (a *Annotator) Annotate(sentence string) string {
	tokens := a.t.Tokenize(sentence)
	parts := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY {
			continue
		}

		// Kagome IPA feature 7 is the reading (katakana).
		reading := ""
		if features := token.Features(); len(features) > 7 && features[7] != "*" {
			reading = kana.ToHiragana(features[7])
		}

		segs := furigana.Distribute(token.Surface, reading)
		parts = append(parts, furigana.Bracket(segs))
	}
	return strings.Join(parts, " ")
}
