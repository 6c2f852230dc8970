package source

import (
	"strings"
	"testing"
)

func TestAnnotate(t *testing.T) {
	a, err := NewAnnotator()
	if err != nil {
		t.Fatalf("NewAnnotator: %v", err)
	}

	got := a.Annotate("猫を食べる。")
	t.Logf("annotated: %q", got)

	if !strings.Contains(got, "猫[ねこ]") {
		t.Errorf("missing furigana for 猫: %q", got)
	}
	if !strings.Contains(got, "食[た]べる") {
		t.Errorf("missing furigana for 食べる: %q", got)
	}
	// Kana-only particles carry no brackets.
	for _, part := range strings.Split(got, " ") {
		if part == "を[を]" {
			t.Errorf("kana token should not be annotated: %q", got)
		}
	}
}

func TestAnnotateKanaOnlySentence(t *testing.T) {
	a, err := NewAnnotator()
	if err != nil {
		t.Fatalf("NewAnnotator: %v", err)
	}

	got := a.Annotate("これはテストです")
	if strings.Contains(got, "[") {
		t.Errorf("kana-only sentence should have no readings: %q", got)
	}
}

func TestAnnotateEmpty(t *testing.T) {
	a, err := NewAnnotator()
	if err != nil {
		t.Fatalf("NewAnnotator: %v", err)
	}
	if got := a.Annotate(""); got != "" {
		t.Errorf("Annotate(\"\") = %q, want empty", got)
	}
}
