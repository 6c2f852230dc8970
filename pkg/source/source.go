// Package source builds lookup context from a saved web page: the page
// title and URL, plus the sentence the looked-up word appears in.
package source

import (
	"bytes"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

// Page holds what context extraction needs from a document.
type Page struct {
	URL   string
	Title string
	Text  string
}

var (
	// (?s) allows dot to match newlines
	// (?i) makes it case-insensitive
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses
// (<rp>...</rp>) from HTML content. Readability extracts all text
// including furigana, which duplicates readings into the body text
// (e.g. "漢字" becomes "漢字かんじ"); stripping the annotations first
// avoids that.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}

// ReadPage extracts title and readable text from an HTML document.
// pageURL is used both as the readability base URL and as the page's
// recorded address; it may be empty for local files.
func ReadPage(r io.Reader, pageURL string) (*Page, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = SanitizeRuby(raw)

	parsed, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader(raw), parsed)
	if err != nil {
		return nil, err
	}
	return &Page{
		URL:   pageURL,
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}

// SplitSentences breaks text on common Japanese sentence delimiters and
// newlines. 。(3002), ！(FF01), ？(FF1F)
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '。' || r == '！' || r == '？' || r == '\n' {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}

// FindSentence returns the first sentence of text containing expression,
// trimmed, or the empty string when the expression never appears.
func FindSentence(text, expression string) string {
	if expression == "" {
		return ""
	}
	for _, s := range SplitSentences(text) {
		if strings.Contains(s, expression) {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
