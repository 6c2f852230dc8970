package dictionary

// Kind discriminates the lookup-result variants.
type Kind int

const (
	KindWord Kind = iota
	KindKanji
	KindName
)

// Entry is a resolved dictionary lookup result. Exactly one of Word,
// Kanji or Name is set, matching Kind. Entries are value objects built
// fresh per lookup and never mutated afterwards.
type Entry struct {
	Kind  Kind
	Word  *WordEntry
	Kanji *KanjiEntry
	Name  *NameEntry
}

// Headword is one writing or reading of a word. SearchOnly forms are kept
// for matching but excluded from display.
type Headword struct {
	Text       string
	SearchOnly bool
}

// WordEntry is a vocabulary entry.
type WordEntry struct {
	Sequence int64
	Kanji    []Headword
	Kana     []Headword
	Senses   []Sense

	// Reasons holds one deinflection chain per way the looked-up surface
	// form reduces to this entry's dictionary form.
	Reasons [][]Reason

	// Pitches holds accent drop positions recorded for the reading, one
	// per accent pattern. Supplied by the lookup layer when known.
	Pitches []int

	// Rank is the corpus frequency rank resolved by the caller, nil when
	// no ranking is available.
	Rank *int
}

// Gloss is a single definition string. Trademark glosses get a ™ glyph
// appended when serialized.
type Gloss struct {
	Text      string
	Trademark bool
}

// Sense groups the glosses sharing one meaning, with its grammatical and
// usage tags. Lang empty or "en" means an English sense; anything else
// marks a native-language sense, which serializes differently.
type Sense struct {
	Glosses       []Gloss
	PartsOfSpeech []string
	Misc          []string
	Fields        []string
	Info          string
	Lang          string
}

// IsNativeLanguage reports whether the sense is tagged with a language
// other than English.
func (s Sense) IsNativeLanguage() bool {
	return s.Lang != "" && s.Lang != "en"
}

// KanjiEntry is a single-character entry. StrokeCount 0 means unknown.
type KanjiEntry struct {
	Character   string
	Onyomi      []string
	Kunyomi     []string
	Meanings    []string
	StrokeCount int
}

// NameEntry is a proper-name entry.
type NameEntry struct {
	Kanji        []string
	Kana         []string
	Translations []Translation
}

// Translation is one rendering of a name, optionally tagged with name
// types (surname, place, company, ...).
type Translation struct {
	Types   []string
	Details []string
}
