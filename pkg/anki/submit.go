package anki

import (
	"context"
	"errors"
	"fmt"
)

// Submission errors a Submitter implementation is expected to surface as
// typed values, so callers can react without string matching.
var (
	ErrDuplicateNote = errors.New("anki: note is a duplicate")
	ErrDeckNotFound  = errors.New("anki: deck not found")
	ErrModelNotFound = errors.New("anki: model not found")
)

// Submitter is the boundary to the external note-taking service. This
// package never talks to the network itself; implementations live with
// the caller.
type Submitter interface {
	// AddNote submits a finished note and returns its identifier.
	AddNote(ctx context.Context, note Note) (int64, error)
	// CanAddNotes reports, per note, whether submission would succeed
	// under the notes' duplicate policies.
	CanAddNotes(ctx context.Context, notes []Note) ([]bool, error)
	DeckNames(ctx context.Context) ([]string, error)
	ModelNames(ctx context.Context) ([]string, error)
	ModelFieldNames(ctx context.Context, model string) ([]string, error)
}

// FrequencyIndex resolves a corpus frequency rank for a word form. Either
// form may be empty. ok is false when the word is absent from the
// ranking.
type FrequencyIndex interface {
	Rank(kanjiForm, kanaForm string) (rank int, ok bool, err error)
}

// VerifySettings checks that the configured deck, model and field names
// exist on the service before any notes are submitted. Returns
// ErrDeckNotFound or ErrModelNotFound wrapped with the missing name;
// unknown field names are reported by name too.
func VerifySettings(ctx context.Context, s Submitter, settings Settings) error {
	decks, err := s.DeckNames(ctx)
	if err != nil {
		return err
	}
	if !contains(decks, settings.Deck) {
		return fmt.Errorf("%w: %s", ErrDeckNotFound, settings.Deck)
	}

	models, err := s.ModelNames(ctx)
	if err != nil {
		return err
	}
	if !contains(models, settings.Model) {
		return fmt.Errorf("%w: %s", ErrModelNotFound, settings.Model)
	}

	fields, err := s.ModelFieldNames(ctx, settings.Model)
	if err != nil {
		return err
	}
	for name := range settings.Fields {
		if !contains(fields, name) {
			return fmt.Errorf("model %s has no field %q", settings.Model, name)
		}
	}
	return nil
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
