package anki

// DuplicateScope bounds the search used when checking whether a note
// already exists.
type DuplicateScope string

const (
	ScopeCollection DuplicateScope = "collection"
	ScopeDeck       DuplicateScope = "deck"
	ScopeDeckRoot   DuplicateScope = "deck-root"
)

// Note is a finished note record, ready to hand to a Submitter. The JSON
// shape matches what the external note-taking service's addNote action
// expects.
type Note struct {
	Deck    string            `json:"deckName"`
	Model   string            `json:"modelName"`
	Fields  map[string]string `json:"fields"`
	Tags    []string          `json:"tags"`
	Options NoteOptions       `json:"options"`
}

// NoteOptions carries the duplicate-handling policy.
type NoteOptions struct {
	AllowDuplicate        bool                  `json:"allowDuplicate"`
	DuplicateScope        DuplicateScope        `json:"duplicateScope"`
	DuplicateScopeOptions DuplicateScopeOptions `json:"duplicateScopeOptions"`
}

// DuplicateScopeOptions narrows the duplicate check to a deck subtree.
type DuplicateScopeOptions struct {
	DeckName       string `json:"deckName"`
	CheckChildren  bool   `json:"checkChildren"`
	CheckAllModels bool   `json:"checkAllModels"`
}

// Settings is the user configuration a note is assembled under: target
// deck and model, tags, the duplicate-check policy, and one template per
// field.
type Settings struct {
	Deck            string
	Model           string
	Tags            []string
	CheckDuplicates bool
	DuplicateScope  DuplicateScope
	Fields          map[string]string
}

// AssembleNote renders every field template against the marker map and
// combines the results with the deck/model/tag/duplicate settings.
// Overrides take precedence over computed marker values; callers use them
// to inject data this engine cannot compute, like audio filenames fetched
// out-of-band.
func AssembleNote(settings Settings, markers MarkerMap, overrides map[Marker]string) Note {
	if len(overrides) > 0 {
		merged := make(MarkerMap, len(markers)+len(overrides))
		for k, v := range markers {
			merged[k] = v
		}
		for k, v := range overrides {
			merged[k] = v
		}
		markers = merged
	}

	fields := make(map[string]string, len(settings.Fields))
	for name, template := range settings.Fields {
		fields[name] = Render(template, markers)
	}

	tags := make([]string, len(settings.Tags))
	copy(tags, settings.Tags)

	scope := settings.DuplicateScope
	if scope == "" {
		scope = ScopeCollection
	}

	return Note{
		Deck:   settings.Deck,
		Model:  settings.Model,
		Fields: fields,
		Tags:   tags,
		Options: NoteOptions{
			AllowDuplicate: !settings.CheckDuplicates,
			DuplicateScope: scope,
			DuplicateScopeOptions: DuplicateScopeOptions{
				DeckName:       settings.Deck,
				CheckChildren:  true,
				CheckAllModels: false,
			},
		},
	}
}
