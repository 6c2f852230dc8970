package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"notegen/pkg/kana"
)

// jmdictEntry matches the structure of jmdict-simplified entries.
type jmdictEntry struct {
	ID    string        `json:"id"`
	Kanji []jmdictElem  `json:"kanji"`
	Kana  []jmdictElem  `json:"kana"`
	Sense []jmdictSense `json:"sense"`
}

type jmdictElem struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

type jmdictSense struct {
	PartOfSpeech []string      `json:"partOfSpeech"`
	Field        []string      `json:"field"`
	Misc         []string      `json:"misc"`
	Info         []string      `json:"info"`
	Gloss        []jmdictGloss `json:"gloss"`
}

type jmdictGloss struct {
	Text string `json:"text"`
	Lang string `json:"lang"` // defaults to 'eng' if missing
	Type string `json:"type"`
}

// Index is an in-memory dictionary keyed by every kanji and kana form.
// Built once at load time, read-only afterwards, safe for concurrent use.
type Index struct {
	byText map[string][]*WordEntry
}

// Load reads a jmdict-simplified JSON file and builds a lookup index.
// Both file shapes are accepted: an object wrapper { "words": [...] } and
// a bare array [...].
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapper struct {
		Words []jmdictEntry `json:"words"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapper); err == nil && len(wrapper.Words) > 0 {
		return buildIndex(wrapper.Words), nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var raw []jmdictEntry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary as object or array: %w", err)
	}
	return buildIndex(raw), nil
}

func buildIndex(raw []jmdictEntry) *Index {
	idx := make(map[string][]*WordEntry)
	for _, r := range raw {
		entry := convertWord(r)
		for _, k := range entry.Kanji {
			idx[k.Text] = append(idx[k.Text], entry)
		}
		for _, k := range entry.Kana {
			idx[k.Text] = append(idx[k.Text], entry)
		}
	}
	return &Index{byText: idx}
}

// convertWord maps a raw jmdict-simplified record onto the Entry model.
// The sK/sk element tags mark search-only forms.
func convertWord(r jmdictEntry) *WordEntry {
	seq, _ := strconv.ParseInt(r.ID, 10, 64)
	w := &WordEntry{Sequence: seq}

	for _, k := range r.Kanji {
		w.Kanji = append(w.Kanji, Headword{Text: k.Text, SearchOnly: hasTag(k.Tags, "sK")})
	}
	for _, k := range r.Kana {
		w.Kana = append(w.Kana, Headword{Text: k.Text, SearchOnly: hasTag(k.Tags, "sk")})
	}
	for _, s := range r.Sense {
		sense := Sense{
			PartsOfSpeech: s.PartOfSpeech,
			Misc:          s.Misc,
			Fields:        s.Field,
		}
		if len(s.Info) > 0 {
			sense.Info = s.Info[0]
		}
		for _, g := range s.Gloss {
			sense.Glosses = append(sense.Glosses, Gloss{
				Text:      g.Text,
				Trademark: g.Type == "trademark",
			})
			if sense.Lang == "" {
				sense.Lang = normalizeLang(g.Lang)
			}
		}
		w.Senses = append(w.Senses, sense)
	}
	return w
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// normalizeLang collapses jmdict-simplified's 3-letter English code so the
// serializer's "empty or en means English" rule holds.
func normalizeLang(lang string) string {
	if lang == "" || lang == "eng" || lang == "en" {
		return "en"
	}
	return lang
}

// LookupWord returns entries whose kanji or kana forms match text, best
// first. When reading is non-empty, entries are additionally required to
// carry that reading (compared hiragana-normalized). Results are sorted by
// sequence number so repeated lookups are deterministic.
func (ix *Index) LookupWord(text, reading string) []*WordEntry {
	candidates := ix.byText[text]
	if len(candidates) == 0 {
		return nil
	}

	normalized := kana.ToHiragana(reading)
	seen := make(map[int64]bool, len(candidates))
	var results []*WordEntry
	for _, e := range candidates {
		if seen[e.Sequence] {
			continue
		}
		seen[e.Sequence] = true
		if reading != "" && !hasReading(e, normalized) {
			continue
		}
		results = append(results, e)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Sequence < results[j].Sequence
	})
	return results
}

func hasReading(e *WordEntry, normalized string) bool {
	for _, k := range e.Kana {
		if kana.ToHiragana(k.Text) == normalized {
			return true
		}
	}
	return false
}
