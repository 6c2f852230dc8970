package anki

import (
	"strconv"
	"strings"

	"notegen/pkg/dictionary"
	"notegen/pkg/furigana"
	"notegen/pkg/gloss"
	"notegen/pkg/kana"
	"notegen/pkg/pitch"
)

// Context carries the externally supplied lookup surroundings. All fields
// are optional opaque strings. SentenceFurigana is precomputed by the
// caller (see pkg/source) so the builders stay pure.
type Context struct {
	URL              string
	Title            string
	Sentence         string
	SentenceFurigana string
}

// BuildMarkers computes the complete marker map for an entry. Every name
// in AllMarkers is present in the result; markers that do not apply to the
// entry's variant hold the empty string. The function is pure: identical
// inputs always produce identical maps.
func BuildMarkers(entry dictionary.Entry, ctx Context) MarkerMap {
	switch entry.Kind {
	case dictionary.KindKanji:
		if entry.Kanji != nil {
			return buildKanjiMarkers(entry.Kanji, ctx)
		}
	case dictionary.KindName:
		if entry.Name != nil {
			return buildNameMarkers(entry.Name, ctx)
		}
	default:
		if entry.Word != nil {
			return buildWordMarkers(entry.Word, ctx)
		}
	}
	m := newMarkerMap()
	fillContext(m, ctx, "")
	return m
}

func buildWordMarkers(w *dictionary.WordEntry, ctx Context) MarkerMap {
	m := newMarkerMap()

	expression := firstDisplayed(w.Kanji)
	reading := firstDisplayed(w.Kana)
	if expression == "" {
		expression = reading
	}
	m[MarkerExpression] = expression
	m[MarkerReading] = reading
	m[MarkerReadingHiragana] = kana.ToHiragana(reading)

	segs := furigana.Distribute(expression, reading)
	m[MarkerFurigana] = furigana.Ruby(segs)
	m[MarkerFuriganaPlain] = furigana.Bracket(segs)

	m[MarkerGlossary] = gloss.HTML(w.Senses)
	m[MarkerGlossaryBrief] = gloss.Brief(w.Senses)
	m[MarkerGlossaryPlain] = gloss.Plain(w.Senses)
	m[MarkerGlossaryFirst] = gloss.First(w.Senses)

	var pos, tags []string
	for _, s := range w.Senses {
		pos = appendUnique(pos, s.PartsOfSpeech...)
		tags = appendUnique(tags, s.PartsOfSpeech...)
		tags = appendUnique(tags, s.Misc...)
		tags = appendUnique(tags, s.Fields...)
	}
	m[MarkerPartOfSpeech] = strings.Join(pos, ", ")
	m[MarkerTags] = strings.Join(tags, ", ")
	m[MarkerConjugation] = renderReasonChains(w.Reasons)

	if len(w.Pitches) > 0 {
		positions := make([]string, len(w.Pitches))
		categories := make([]string, len(w.Pitches))
		for i, p := range w.Pitches {
			positions[i] = strconv.Itoa(p)
			categories[i] = string(pitch.Classify(reading, p))
		}
		m[MarkerPitchPositions] = strings.Join(positions, ", ")
		m[MarkerPitchCategories] = strings.Join(categories, ", ")
		m[MarkerPitchCount] = strconv.Itoa(len(w.Pitches))
	}

	if w.Rank != nil {
		m[MarkerFrequencyRank] = strconv.Itoa(*w.Rank)
		m[MarkerFrequency] = "#" + strconv.Itoa(*w.Rank)
	}
	if w.Sequence > 0 {
		m[MarkerSequence] = strconv.FormatInt(w.Sequence, 10)
	}

	fillContext(m, ctx, expression)
	return m
}

func buildKanjiMarkers(k *dictionary.KanjiEntry, ctx Context) MarkerMap {
	m := newMarkerMap()

	m[MarkerExpression] = k.Character
	m[MarkerCharacter] = k.Character

	readings := append(append([]string{}, k.Onyomi...), k.Kunyomi...)
	m[MarkerReading] = strings.Join(readings, "・")
	m[MarkerOnyomi] = strings.Join(k.Onyomi, "・")
	m[MarkerKunyomi] = strings.Join(k.Kunyomi, "・")

	meanings := strings.Join(k.Meanings, ", ")
	m[MarkerGlossary] = meanings
	m[MarkerGlossaryBrief] = meanings
	m[MarkerGlossaryPlain] = meanings
	m[MarkerMeanings] = meanings
	if len(k.Meanings) > 0 {
		m[MarkerGlossaryFirst] = k.Meanings[0]
	}

	if k.StrokeCount > 0 {
		m[MarkerStrokeCount] = strconv.Itoa(k.StrokeCount)
	}

	fillContext(m, ctx, k.Character)
	return m
}

func buildNameMarkers(n *dictionary.NameEntry, ctx Context) MarkerMap {
	m := newMarkerMap()

	expression := strings.Join(n.Kanji, "、")
	reading := strings.Join(n.Kana, "、")
	if expression == "" {
		expression = reading
	}
	m[MarkerExpression] = expression
	m[MarkerReading] = reading
	m[MarkerReadingHiragana] = kana.ToHiragana(reading)

	// Furigana only makes sense for a single unambiguous form pair.
	if len(n.Kanji) == 1 && len(n.Kana) > 0 {
		segs := furigana.Distribute(n.Kanji[0], n.Kana[0])
		m[MarkerFurigana] = furigana.Ruby(segs)
		m[MarkerFuriganaPlain] = furigana.Bracket(segs)
	}

	translations := make([]string, 0, len(n.Translations))
	var types []string
	for _, tr := range n.Translations {
		var b strings.Builder
		if len(tr.Types) > 0 {
			b.WriteString("(" + strings.Join(tr.Types, ", ") + ") ")
		}
		b.WriteString(strings.Join(tr.Details, ", "))
		translations = append(translations, b.String())
		types = appendUnique(types, tr.Types...)
	}
	joined := strings.Join(translations, "; ")
	m[MarkerGlossary] = joined
	m[MarkerGlossaryBrief] = joined
	m[MarkerGlossaryPlain] = joined
	if len(translations) > 0 {
		m[MarkerGlossaryFirst] = translations[0]
	}
	m[MarkerNameTypes] = strings.Join(types, ", ")

	fillContext(m, ctx, expression)
	return m
}

// fillContext populates the sentence/url/title markers and derives the
// cloze triple from the first occurrence of expression in the sentence.
func fillContext(m MarkerMap, ctx Context, expression string) {
	m[MarkerSentence] = ctx.Sentence
	m[MarkerSentenceFurigana] = ctx.SentenceFurigana
	m[MarkerURL] = ctx.URL
	m[MarkerDocumentTitle] = ctx.Title

	if ctx.Sentence == "" || expression == "" {
		return
	}
	if idx := strings.Index(ctx.Sentence, expression); idx >= 0 {
		m[MarkerClozePrefix] = ctx.Sentence[:idx]
		m[MarkerClozeBody] = expression
		m[MarkerClozeSuffix] = ctx.Sentence[idx+len(expression):]
	}
}

// firstDisplayed returns the first headword not flagged search-only.
func firstDisplayed(headwords []dictionary.Headword) string {
	for _, h := range headwords {
		if !h.SearchOnly {
			return h.Text
		}
	}
	return ""
}

// renderReasonChains renders each deinflection chain as its labels joined
// by the chevron separator, chains joined by commas.
func renderReasonChains(chains [][]dictionary.Reason) string {
	if len(chains) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(chains))
	for _, chain := range chains {
		labels := make([]string, len(chain))
		for i, r := range chain {
			labels[i] = r.Label()
		}
		rendered = append(rendered, strings.Join(labels, " « "))
	}
	return strings.Join(rendered, ", ")
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
