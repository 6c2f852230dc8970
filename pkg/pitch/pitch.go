package pitch

import "notegen/pkg/kana"

// Category names a Japanese pitch-accent pattern.
type Category string

const (
	// Heiban is the flat pattern: no downstep anywhere.
	Heiban Category = "heiban"
	// Atamadaka drops after the first mora.
	Atamadaka Category = "atamadaka"
	// Nakadaka drops somewhere in the middle of the word.
	Nakadaka Category = "nakadaka"
	// Odaka drops right after the final mora.
	Odaka Category = "odaka"
)

// MoraCount counts morae in a kana reading. Small vowel/glide kana merge
// into the preceding character, everything else (including っ, ん and ー)
// is one mora.
func MoraCount(reading string) int {
	n := 0
	for _, r := range reading {
		if kana.IsSmall(r) {
			continue
		}
		n++
	}
	return n
}

// Classify maps an accent drop position within reading to its pattern
// name. Position 0 means the pitch never drops.
func Classify(reading string, dropPosition int) Category {
	switch {
	case dropPosition == 0:
		return Heiban
	case dropPosition == 1:
		return Atamadaka
	case dropPosition == MoraCount(reading):
		return Odaka
	default:
		return Nakadaka
	}
}
