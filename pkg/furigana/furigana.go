package furigana

import (
	"strings"

	"notegen/pkg/kana"
)

// Segment pairs a run of expression text with the part of the reading
// pronounced over it. Kana runs carry an empty Reading: their own text
// stands in for that part of the pronunciation, so concatenating every
// Text reproduces the expression and concatenating readings (with kana
// text filling the gaps) reproduces the reading.
type Segment struct {
	Text    string
	Reading string
}

// Distribute aligns a pronunciation reading against a mixed kanji/kana
// expression and returns the furigana segments in order.
//
// The expression is split into maximal kana and non-kana runs. Each kana
// run is located as a literal substring of the (hiragana-normalized)
// reading, left to right; whatever reading text sits between two matches
// belongs to the kanji run in between. Matching is greedy and never
// backtracks, so a kana run whose text recurs earlier in the reading than
// its true position can be mis-segmented. That is intentional: card
// templates built against this output depend on the exact behavior.
//
// Alignment never fails hard. If a kana run cannot be located, the whole
// expression is returned as one segment carrying the whole reading.
func Distribute(expression, reading string) []Segment {
	if reading == "" || reading == expression {
		return []Segment{{Text: expression}}
	}
	if kana.IsAllKana(expression) {
		// Furigana is never drawn over an all-kana expression.
		return []Segment{{Text: expression}}
	}

	runs := splitRuns(expression)
	if len(runs) == 1 {
		return []Segment{{Text: expression, Reading: reading}}
	}

	// Normalization is used for matching only; assigned furigana text is
	// taken from the original reading. ToHiragana maps rune to rune, so
	// indices in the two slices line up.
	normalized := []rune(kana.ToHiragana(reading))
	original := []rune(reading)

	segs := make([]Segment, 0, len(runs))
	isKanjiSeg := make([]bool, 0, len(runs))
	cursor := 0

	for _, r := range runs {
		if !r.isKana {
			// Placeholder; its reading is filled in once the next kana
			// run is matched, or from the trailing reading at the end.
			segs = append(segs, Segment{Text: r.text})
			isKanjiSeg = append(isKanjiSeg, true)
			continue
		}

		want := []rune(kana.ToHiragana(r.text))
		offset := indexRunes(normalized[cursor:], want)
		if offset < 0 {
			// Cannot locate this kana run in the remaining reading;
			// degrade to a single unsegmented span.
			return []Segment{{Text: expression, Reading: reading}}
		}
		if offset > 0 {
			between := string(original[cursor : cursor+offset])
			if n := len(segs); n > 0 && isKanjiSeg[n-1] {
				segs[n-1].Reading = between
			} else {
				segs = append(segs, Segment{Text: between})
				isKanjiSeg = append(isKanjiSeg, false)
			}
		}
		segs = append(segs, Segment{Text: r.text})
		isKanjiSeg = append(isKanjiSeg, false)
		cursor += offset + len(want)
	}

	// Unconsumed trailing reading belongs to the last kanji run.
	if cursor < len(original) {
		for i := len(segs) - 1; i >= 0; i-- {
			if isKanjiSeg[i] {
				segs[i].Reading = string(original[cursor:])
				break
			}
		}
	}

	return segs
}

// Bracket renders segments in the plain text[reading] notation, one space
// between segments.
func Bracket(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		if s.Reading != "" {
			parts[i] = s.Text + "[" + s.Reading + "]"
		} else {
			parts[i] = s.Text
		}
	}
	return strings.Join(parts, " ")
}

// Ruby renders segments as HTML ruby markup, concatenated without
// separators. Segments with no reading are emitted as literal text.
func Ruby(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Reading == "" {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString("<ruby>")
		b.WriteString(s.Text)
		b.WriteString("<rt>")
		b.WriteString(s.Reading)
		b.WriteString("</rt></ruby>")
	}
	return b.String()
}

type run struct {
	text   string
	isKana bool
}

// splitRuns partitions s into maximal runs of consecutive kana vs non-kana
// characters, preserving order.
func splitRuns(s string) []run {
	var runs []run
	var b strings.Builder
	current := false
	for i, r := range []rune(s) {
		k := kana.IsKana(r)
		if i > 0 && k != current {
			runs = append(runs, run{text: b.String(), isKana: current})
			b.Reset()
		}
		b.WriteRune(r)
		current = k
	}
	if b.Len() > 0 {
		runs = append(runs, run{text: b.String(), isKana: current})
	}
	return runs
}

// indexRunes returns the rune index of the first occurrence of needle in
// haystack, or -1.
func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
