// Package anki turns a resolved dictionary entry plus context into the
// field values of a flashcard note: a fixed vocabulary of named markers,
// per-variant marker builders, a template renderer and a note assembler.
package anki

// Marker is one name from the closed marker vocabulary that user templates
// are written against. The set mirrors an existing card-template
// ecosystem, so names here are frozen: removing or renaming one breaks
// every template built on it. Unknown names in a template are tolerated at
// render time (they produce an empty string) for forward compatibility.
type Marker string

const (
	MarkerExpression      Marker = "expression"
	MarkerReading         Marker = "reading"
	MarkerReadingHiragana Marker = "reading-hiragana"
	MarkerFurigana        Marker = "furigana"
	MarkerFuriganaPlain   Marker = "furigana-plain"

	MarkerGlossary      Marker = "glossary"
	MarkerGlossaryBrief Marker = "glossary-brief"
	MarkerGlossaryPlain Marker = "glossary-plain"
	MarkerGlossaryFirst Marker = "glossary-first"

	MarkerPartOfSpeech Marker = "part-of-speech"
	MarkerTags         Marker = "tags"
	MarkerConjugation  Marker = "conjugation"

	MarkerPitchPositions  Marker = "pitch-accent-positions"
	MarkerPitchCategories Marker = "pitch-accent-categories"
	MarkerPitchCount      Marker = "pitch-accent-count"

	MarkerSentence         Marker = "sentence"
	MarkerSentenceFurigana Marker = "sentence-furigana"
	MarkerClozePrefix      Marker = "cloze-prefix"
	MarkerClozeBody        Marker = "cloze-body"
	MarkerClozeSuffix      Marker = "cloze-suffix"
	MarkerURL              Marker = "url"
	MarkerDocumentTitle    Marker = "document-title"

	MarkerFrequency     Marker = "frequency"
	MarkerFrequencyRank Marker = "frequency-rank"
	MarkerSequence      Marker = "sequence"

	// Compatibility-only markers. This engine never has the binary media
	// or source-dictionary metadata behind them; they exist so templates
	// written for the wider ecosystem keep rendering, with empty values.
	MarkerAudio           Marker = "audio"
	MarkerImage           Marker = "image"
	MarkerScreenshot      Marker = "screenshot"
	MarkerClipboardImage  Marker = "clipboard-image"
	MarkerClipboardText   Marker = "clipboard-text"
	MarkerDictionary      Marker = "dictionary"
	MarkerDictionaryAlias Marker = "dictionary-alias"

	MarkerCharacter   Marker = "character"
	MarkerOnyomi      Marker = "onyomi"
	MarkerKunyomi     Marker = "kunyomi"
	MarkerStrokeCount Marker = "stroke-count"
	MarkerMeanings    Marker = "meanings"

	MarkerNameTypes Marker = "name-types"
)

// AllMarkers enumerates the whole vocabulary. Every builder output
// contains every one of these as a key; inapplicable markers map to the
// empty string, never to a missing key.
var AllMarkers = []Marker{
	MarkerExpression,
	MarkerReading,
	MarkerReadingHiragana,
	MarkerFurigana,
	MarkerFuriganaPlain,
	MarkerGlossary,
	MarkerGlossaryBrief,
	MarkerGlossaryPlain,
	MarkerGlossaryFirst,
	MarkerPartOfSpeech,
	MarkerTags,
	MarkerConjugation,
	MarkerPitchPositions,
	MarkerPitchCategories,
	MarkerPitchCount,
	MarkerSentence,
	MarkerSentenceFurigana,
	MarkerClozePrefix,
	MarkerClozeBody,
	MarkerClozeSuffix,
	MarkerURL,
	MarkerDocumentTitle,
	MarkerFrequency,
	MarkerFrequencyRank,
	MarkerSequence,
	MarkerAudio,
	MarkerImage,
	MarkerScreenshot,
	MarkerClipboardImage,
	MarkerClipboardText,
	MarkerDictionary,
	MarkerDictionaryAlias,
	MarkerCharacter,
	MarkerOnyomi,
	MarkerKunyomi,
	MarkerStrokeCount,
	MarkerMeanings,
	MarkerNameTypes,
}

// MarkerMap holds the computed value for every marker name.
type MarkerMap map[Marker]string

// newMarkerMap returns a map with every vocabulary name present and empty.
func newMarkerMap() MarkerMap {
	m := make(MarkerMap, len(AllMarkers))
	for _, name := range AllMarkers {
		m[name] = ""
	}
	return m
}
