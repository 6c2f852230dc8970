package anki

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeSubmitter struct {
	decks  []string
	models []string
	fields map[string][]string
}

func (f *fakeSubmitter) AddNote(ctx context.Context, note Note) (int64, error) {
	return 1, nil
}

func (f *fakeSubmitter) CanAddNotes(ctx context.Context, notes []Note) ([]bool, error) {
	return make([]bool, len(notes)), nil
}

func (f *fakeSubmitter) DeckNames(ctx context.Context) ([]string, error) {
	return f.decks, nil
}

func (f *fakeSubmitter) ModelNames(ctx context.Context) ([]string, error) {
	return f.models, nil
}

func (f *fakeSubmitter) ModelFieldNames(ctx context.Context, model string) ([]string, error) {
	return f.fields[model], nil
}

func TestVerifySettings(t *testing.T) {
	sub := &fakeSubmitter{
		decks:  []string{"Default", "Japanese"},
		models: []string{"Basic"},
		fields: map[string][]string{"Basic": {"Front", "Back"}},
	}

	good := Settings{
		Deck:   "Japanese",
		Model:  "Basic",
		Fields: map[string]string{"Front": "{expression}", "Back": "{glossary}"},
	}
	if err := VerifySettings(context.Background(), sub, good); err != nil {
		t.Errorf("VerifySettings = %v, want nil", err)
	}

	badDeck := good
	badDeck.Deck = "Nope"
	if err := VerifySettings(context.Background(), sub, badDeck); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("missing deck: err = %v, want ErrDeckNotFound", err)
	}

	badModel := good
	badModel.Model = "Nope"
	if err := VerifySettings(context.Background(), sub, badModel); !errors.Is(err, ErrModelNotFound) {
		t.Errorf("missing model: err = %v, want ErrModelNotFound", err)
	}

	badField := good
	badField.Fields = map[string]string{"Sentence": "{sentence}"}
	err := VerifySettings(context.Background(), sub, badField)
	if err == nil || !strings.Contains(err.Error(), "Sentence") {
		t.Errorf("missing field: err = %v, want error naming the field", err)
	}
}
