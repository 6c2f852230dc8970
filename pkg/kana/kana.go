package kana

// Character classification and normalization helpers for Japanese kana.
// Everything here is pure; the furigana and pitch packages build on it.

// IsKana reports whether r is hiragana, katakana, or the prolonged sound
// mark ー (which only ever appears inside kana runs).
func IsKana(r rune) bool {
	if r >= 0x3041 && r <= 0x3096 { // hiragana ぁ..ゖ
		return true
	}
	if r >= 0x30A1 && r <= 0x30FA { // katakana ァ..ヺ
		return true
	}
	return r == 'ー'
}

// IsAllKana reports whether every rune of s is kana. The empty string
// counts as all-kana.
func IsAllKana(s string) bool {
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}

// IsSmall reports whether r is a small-form vowel or glide kana. These
// combine with the preceding character into a single mora. The sokuon
// (っ/ッ) and ん/ン are deliberately not included: they count as full morae.
func IsSmall(r rune) bool {
	switch r {
	case 'ぁ', 'ぃ', 'ぅ', 'ぇ', 'ぉ', 'ゃ', 'ゅ', 'ょ', 'ゎ',
		'ァ', 'ィ', 'ゥ', 'ェ', 'ォ', 'ャ', 'ュ', 'ョ', 'ヮ':
		return true
	}
	return false
}

// ToHiragana converts katakana characters to hiragana, leaving everything
// else untouched. The mapping is one rune to one rune, so rune indices in
// the result line up with the input.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
