package anki

import (
	"reflect"
	"testing"

	"notegen/pkg/dictionary"
)

func wordEntry() dictionary.Entry {
	rank := 1042
	return dictionary.Entry{
		Kind: dictionary.KindWord,
		Word: &dictionary.WordEntry{
			Sequence: 1358280,
			Kanji: []dictionary.Headword{
				{Text: "喰べる", SearchOnly: true},
				{Text: "食べる"},
			},
			Kana: []dictionary.Headword{{Text: "たべる"}},
			Senses: []dictionary.Sense{
				{
					Glosses:       []dictionary.Gloss{{Text: "to eat"}},
					PartsOfSpeech: []string{"v1", "vt"},
				},
				{
					Glosses:       []dictionary.Gloss{{Text: "to live on (e.g. a salary)"}},
					PartsOfSpeech: []string{"v1"},
					Misc:          []string{"col"},
				},
			},
			Reasons: [][]dictionary.Reason{
				{"te", "continuous"},
				{"past"},
			},
			Pitches: []int{2, 0},
			Rank:    &rank,
		},
	}
}

func kanjiEntry() dictionary.Entry {
	return dictionary.Entry{
		Kind: dictionary.KindKanji,
		Kanji: &dictionary.KanjiEntry{
			Character:   "食",
			Onyomi:      []string{"ショク", "ジキ"},
			Kunyomi:     []string{"く.う", "た.べる"},
			Meanings:    []string{"eat", "food"},
			StrokeCount: 9,
		},
	}
}

func nameEntry() dictionary.Entry {
	return dictionary.Entry{
		Kind: dictionary.KindName,
		Name: &dictionary.NameEntry{
			Kanji: []string{"田中"},
			Kana:  []string{"たなか"},
			Translations: []dictionary.Translation{
				{Types: []string{"surname"}, Details: []string{"Tanaka"}},
			},
		},
	}
}

// Every marker name must be present in every produced map, whatever the
// entry variant, with empty string standing in for "not applicable".
func TestBuildMarkersCoversFullVocabulary(t *testing.T) {
	entries := map[string]dictionary.Entry{
		"word":  wordEntry(),
		"kanji": kanjiEntry(),
		"name":  nameEntry(),
	}
	for name, entry := range entries {
		t.Run(name, func(t *testing.T) {
			m := BuildMarkers(entry, Context{})
			if len(m) != len(AllMarkers) {
				t.Errorf("map has %d keys, vocabulary has %d", len(m), len(AllMarkers))
			}
			for _, marker := range AllMarkers {
				if _, ok := m[marker]; !ok {
					t.Errorf("marker %q missing from %s map", marker, name)
				}
			}
		})
	}
}

func TestBuildWordMarkers(t *testing.T) {
	m := BuildMarkers(wordEntry(), Context{})

	want := map[Marker]string{
		MarkerExpression:      "食べる",
		MarkerReading:         "たべる",
		MarkerReadingHiragana: "たべる",
		MarkerFurigana:        "<ruby>食<rt>た</rt></ruby>べる",
		MarkerFuriganaPlain:   "食[た] べる",
		MarkerPartOfSpeech:    "v1, vt",
		MarkerTags:            "v1, vt, col",
		MarkerConjugation:     "-te « continuous, past",
		MarkerPitchPositions:  "2, 0",
		MarkerPitchCategories: "nakadaka, heiban",
		MarkerPitchCount:      "2",
		MarkerFrequency:       "#1042",
		MarkerFrequencyRank:   "1042",
		MarkerSequence:        "1358280",
		MarkerAudio:           "",
		MarkerDictionary:      "",
		MarkerCharacter:       "",
		MarkerNameTypes:       "",
	}
	for marker, value := range want {
		if m[marker] != value {
			t.Errorf("%s = %q, want %q", marker, m[marker], value)
		}
	}
}

func TestBuildWordMarkersKanaOnlyWord(t *testing.T) {
	entry := dictionary.Entry{
		Kind: dictionary.KindWord,
		Word: &dictionary.WordEntry{
			Kana: []dictionary.Headword{{Text: "ねこ", SearchOnly: false}},
			Senses: []dictionary.Sense{
				{Glosses: []dictionary.Gloss{{Text: "cat"}}},
			},
		},
	}
	m := BuildMarkers(entry, Context{})
	if m[MarkerExpression] != "ねこ" {
		t.Errorf("expression = %q, want ねこ", m[MarkerExpression])
	}
	// Expression equals reading, so there is nothing to annotate.
	if m[MarkerFuriganaPlain] != "ねこ" {
		t.Errorf("furigana-plain = %q, want ねこ", m[MarkerFuriganaPlain])
	}
	if m[MarkerFurigana] != "ねこ" {
		t.Errorf("furigana = %q, want ねこ", m[MarkerFurigana])
	}
}

func TestBuildWordMarkersNoRankLeavesFrequencyEmpty(t *testing.T) {
	entry := wordEntry()
	entry.Word.Rank = nil
	entry.Word.Pitches = nil
	m := BuildMarkers(entry, Context{})
	for _, marker := range []Marker{
		MarkerFrequency, MarkerFrequencyRank,
		MarkerPitchPositions, MarkerPitchCategories, MarkerPitchCount,
	} {
		if m[marker] != "" {
			t.Errorf("%s = %q, want empty", marker, m[marker])
		}
	}
}

func TestBuildMarkersContext(t *testing.T) {
	ctx := Context{
		URL:              "https://example.com/a",
		Title:            "Example article",
		Sentence:         "毎日ご飯を食べる。",
		SentenceFurigana: "毎日[まいにち] ご飯[はん]を 食[た]べる。",
	}
	m := BuildMarkers(wordEntry(), ctx)
	if m[MarkerSentence] != ctx.Sentence {
		t.Errorf("sentence = %q", m[MarkerSentence])
	}
	if m[MarkerSentenceFurigana] != ctx.SentenceFurigana {
		t.Errorf("sentence-furigana = %q", m[MarkerSentenceFurigana])
	}
	if m[MarkerURL] != ctx.URL || m[MarkerDocumentTitle] != ctx.Title {
		t.Errorf("url/title = %q / %q", m[MarkerURL], m[MarkerDocumentTitle])
	}
	if m[MarkerClozePrefix] != "毎日ご飯を" {
		t.Errorf("cloze-prefix = %q", m[MarkerClozePrefix])
	}
	if m[MarkerClozeBody] != "食べる" {
		t.Errorf("cloze-body = %q", m[MarkerClozeBody])
	}
	if m[MarkerClozeSuffix] != "。" {
		t.Errorf("cloze-suffix = %q", m[MarkerClozeSuffix])
	}
}

func TestBuildMarkersClozeAbsentExpression(t *testing.T) {
	ctx := Context{Sentence: "猫が好きだ。"}
	m := BuildMarkers(wordEntry(), ctx)
	if m[MarkerClozePrefix] != "" || m[MarkerClozeBody] != "" || m[MarkerClozeSuffix] != "" {
		t.Errorf("cloze markers should be empty when the sentence does not contain the expression, got %q/%q/%q",
			m[MarkerClozePrefix], m[MarkerClozeBody], m[MarkerClozeSuffix])
	}
}

func TestBuildKanjiMarkers(t *testing.T) {
	m := BuildMarkers(kanjiEntry(), Context{})
	want := map[Marker]string{
		MarkerExpression:  "食",
		MarkerCharacter:   "食",
		MarkerReading:     "ショク・ジキ・く.う・た.べる",
		MarkerOnyomi:      "ショク・ジキ",
		MarkerKunyomi:     "く.う・た.べる",
		MarkerGlossary:    "eat, food",
		MarkerMeanings:    "eat, food",
		MarkerStrokeCount: "9",
		MarkerFurigana:    "",
		MarkerSequence:    "",
	}
	for marker, value := range want {
		if m[marker] != value {
			t.Errorf("%s = %q, want %q", marker, m[marker], value)
		}
	}
}

func TestBuildNameMarkers(t *testing.T) {
	m := BuildMarkers(nameEntry(), Context{})
	want := map[Marker]string{
		MarkerExpression:    "田中",
		MarkerReading:       "たなか",
		MarkerGlossary:      "(surname) Tanaka",
		MarkerGlossaryFirst: "(surname) Tanaka",
		MarkerNameTypes:     "surname",
		MarkerFuriganaPlain: "田中[たなか]",
	}
	for marker, value := range want {
		if m[marker] != value {
			t.Errorf("%s = %q, want %q", marker, m[marker], value)
		}
	}
}

func TestBuildNameMarkersKanaOnly(t *testing.T) {
	entry := dictionary.Entry{
		Kind: dictionary.KindName,
		Name: &dictionary.NameEntry{
			Kana: []string{"すずき"},
			Translations: []dictionary.Translation{
				{Details: []string{"Suzuki"}},
			},
		},
	}
	m := BuildMarkers(entry, Context{})
	if m[MarkerExpression] != "すずき" {
		t.Errorf("expression = %q, want すずき", m[MarkerExpression])
	}
	if m[MarkerGlossary] != "Suzuki" {
		t.Errorf("glossary = %q, want Suzuki", m[MarkerGlossary])
	}
}

// The builders must be pure: two invocations with the same inputs yield
// identical maps.
func TestBuildMarkersIdempotent(t *testing.T) {
	ctx := Context{Sentence: "毎日ご飯を食べる。", URL: "https://example.com"}
	first := BuildMarkers(wordEntry(), ctx)
	second := BuildMarkers(wordEntry(), ctx)
	if !reflect.DeepEqual(first, second) {
		t.Error("two builds with identical inputs produced different maps")
	}
}
