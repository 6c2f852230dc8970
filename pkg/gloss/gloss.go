// Package gloss renders ordered sense lists into the HTML, brief and
// plain-text strings substituted into the glossary markers.
package gloss

import (
	"fmt"
	"strings"

	"notegen/pkg/dictionary"
)

const trademarkGlyph = "™"

// HTML renders the full HTML form. A single sense carries its tag
// parentheticals inline; multiple senses are numbered, skipping
// native-language senses, which get a bullet instead of consuming a
// number. Senses are joined with a line break.
func HTML(senses []dictionary.Sense) string {
	switch len(senses) {
	case 0:
		return ""
	case 1:
		return renderSense(senses[0], true)
	}
	parts := make([]string, 0, len(senses))
	number := 0
	for _, s := range senses {
		if s.IsNativeLanguage() {
			parts = append(parts, "• "+renderSense(s, true))
			continue
		}
		number++
		parts = append(parts, fmt.Sprintf("(%d) %s", number, renderSense(s, true)))
	}
	return strings.Join(parts, "<br>")
}

// Brief renders the compact HTML form: gloss text only, no tag
// parentheticals or notes. Numbering follows the same scheme as HTML.
func Brief(senses []dictionary.Sense) string {
	switch len(senses) {
	case 0:
		return ""
	case 1:
		return glossText(senses[0])
	}
	parts := make([]string, 0, len(senses))
	number := 0
	for _, s := range senses {
		if s.IsNativeLanguage() {
			parts = append(parts, "• "+glossText(s))
			continue
		}
		number++
		parts = append(parts, fmt.Sprintf("(%d) %s", number, glossText(s)))
	}
	return strings.Join(parts, "<br>")
}

// Plain renders the plain-text form. With more than one sense every sense
// is numbered by its 1-based position regardless of language, joined with
// newlines.
func Plain(senses []dictionary.Sense) string {
	switch len(senses) {
	case 0:
		return ""
	case 1:
		return renderSense(senses[0], false)
	}
	parts := make([]string, len(senses))
	for i, s := range senses {
		parts[i] = fmt.Sprintf("(%d) %s", i+1, renderSense(s, false))
	}
	return strings.Join(parts, "\n")
}

// First renders only the leading sense, in the single-sense full form.
func First(senses []dictionary.Sense) string {
	if len(senses) == 0 {
		return ""
	}
	return renderSense(senses[0], true)
}

// renderSense writes one sense: part-of-speech, field and register
// parentheticals in that order (each omitted when absent), the
// semicolon-joined gloss text, and a trailing note.
func renderSense(s dictionary.Sense, html bool) string {
	var b strings.Builder
	if len(s.PartsOfSpeech) > 0 {
		pos := "(" + strings.Join(s.PartsOfSpeech, ", ") + ")"
		if html {
			pos = "<i>" + pos + "</i>"
		}
		b.WriteString(pos)
		b.WriteString(" ")
	}
	if len(s.Fields) > 0 {
		b.WriteString("(" + strings.Join(s.Fields, ", ") + ") ")
	}
	if len(s.Misc) > 0 {
		b.WriteString("(" + strings.Join(s.Misc, ", ") + ") ")
	}
	b.WriteString(glossText(s))
	if s.Info != "" {
		b.WriteString(" (" + s.Info + ")")
	}
	return b.String()
}

func glossText(s dictionary.Sense) string {
	parts := make([]string, 0, len(s.Glosses))
	for _, g := range s.Glosses {
		text := g.Text
		if g.Trademark {
			text += trademarkGlyph
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "; ")
}
