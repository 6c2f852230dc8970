package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"notegen/pkg/anki"
	"notegen/pkg/batch"
	"notegen/pkg/config"
	"notegen/pkg/dictionary"
	"notegen/pkg/freq"
	"notegen/pkg/source"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	wordFlag := flag.String("word", "", "Expression to generate a note for")
	readingFlag := flag.String("reading", "", "Reading to disambiguate the expression (optional)")
	dictFlag := flag.String("dict", "", "Path to JMdict-Simplified JSON file")
	freqFlag := flag.String("freq", "", "Path to SQLite frequency database (optional)")
	importFreqFlag := flag.String("import-freq", "", "Path to JSON rank list to import into -freq")
	pageFlag := flag.String("page", "", "Path to a saved HTML page for sentence context (optional)")
	urlFlag := flag.String("url", "", "URL recorded for the page context")
	configFlag := flag.String("config", "", "Path to YAML config (default ./notegen.yaml)")
	wordsFlag := flag.String("words", "", "File with one expression per line for bulk generation")
	workersFlag := flag.Int("workers", 4, "Concurrent note builders in bulk mode")
	outFlag := flag.String("o", "", "Output file (default stdout)")
	flag.Parse()

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Handle Frequency Import (Manual)
	if *importFreqFlag != "" {
		if *freqFlag == "" {
			log.Fatal("-import-freq requires -freq")
		}
		conn, err := sql.Open("sqlite3", *freqFlag)
		if err != nil {
			log.Fatalf("Failed to open frequency database: %v", err)
		}
		defer conn.Close()
		if err := freq.InitDB(conn); err != nil {
			log.Fatalf("Failed to initialize frequency database: %v", err)
		}
		entries, err := freq.LoadList(*importFreqFlag)
		if err != nil {
			log.Fatalf("Failed to load rank list: %v", err)
		}
		count, err := freq.Import(ctx, conn, entries, 0)
		if err != nil {
			log.Fatalf("Failed to import rank list: %v", err)
		}
		fmt.Printf("Imported %d frequency rows into %s\n", count, *freqFlag)
		return
	}

	if *wordFlag == "" && *wordsFlag == "" {
		log.Fatal("Please provide a -word, -words or -import-freq")
	}
	if *dictFlag == "" {
		log.Fatal("Please provide a -dict")
	}

	fmt.Printf("Loading dictionary from %s...\n", *dictFlag)
	index, err := dictionary.Load(*dictFlag)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	var freqIndex anki.FrequencyIndex
	if *freqFlag != "" {
		conn, err := sql.Open("sqlite3", *freqFlag)
		if err != nil {
			log.Fatalf("Failed to open frequency database: %v", err)
		}
		defer conn.Close()
		freqIndex = freq.NewIndex(conn)
	}

	var page *source.Page
	var annotator *source.Annotator
	if *pageFlag != "" {
		f, err := os.Open(*pageFlag)
		if err != nil {
			log.Fatalf("Failed to open page: %v", err)
		}
		page, err = source.ReadPage(f, *urlFlag)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to extract page content: %v", err)
		}
		fmt.Printf("Page: %s (%d chars)\n", page.Title, len(page.Text))

		annotator, err = source.NewAnnotator()
		if err != nil {
			log.Fatalf("Failed to create annotator: %v", err)
		}
	}

	gen := &generator{
		index:     index,
		freq:      freqIndex,
		page:      page,
		annotator: annotator,
		settings:  cfg.Settings(),
	}

	if *wordsFlag != "" {
		expressions, err := readWordList(*wordsFlag)
		if err != nil {
			log.Fatalf("Failed to read word list: %v", err)
		}
		results := batch.Generate(ctx, expressions, *workersFlag, func(ctx context.Context, expr string) (anki.Note, error) {
			return gen.build(expr, "")
		})

		notes := make([]anki.Note, 0, len(results))
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				log.Printf("Skipping %q: %v", r.Expression, r.Err)
				failed++
				continue
			}
			notes = append(notes, r.Note)
		}
		if err := writeJSON(*outFlag, notes); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Generated %d notes (%d skipped).\n", len(notes), failed)
		return
	}

	note, err := gen.build(*wordFlag, *readingFlag)
	if err != nil {
		log.Fatalf("Failed to build note: %v", err)
	}
	if err := writeJSON(*outFlag, note); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// generator holds everything one note build needs. Safe for concurrent
// use: the dictionary index and page are read-only, the frequency index
// wraps database/sql, and the tokenizer is stateless after construction.
type generator struct {
	index     *dictionary.Index
	freq      anki.FrequencyIndex
	page      *source.Page
	annotator *source.Annotator
	settings  anki.Settings
}

func (g *generator) build(expression, reading string) (anki.Note, error) {
	matches := g.index.LookupWord(expression, reading)
	if len(matches) == 0 {
		return anki.Note{}, fmt.Errorf("no dictionary entry for %q", expression)
	}
	// Copy before attaching the rank so concurrent builds never touch
	// the shared index entry.
	word := *matches[0]

	if g.freq != nil {
		rank, ok, err := g.freq.Rank(headText(word.Kanji), headText(word.Kana))
		if err != nil {
			return anki.Note{}, fmt.Errorf("frequency lookup for %q: %w", expression, err)
		}
		if ok {
			word.Rank = &rank
		}
	}

	var noteCtx anki.Context
	if g.page != nil {
		noteCtx.URL = g.page.URL
		noteCtx.Title = g.page.Title
		noteCtx.Sentence = source.FindSentence(g.page.Text, expression)
		if noteCtx.Sentence != "" && g.annotator != nil {
			noteCtx.SentenceFurigana = g.annotator.Annotate(noteCtx.Sentence)
		}
	}

	entry := dictionary.Entry{Kind: dictionary.KindWord, Word: &word}
	markers := anki.BuildMarkers(entry, noteCtx)
	return anki.AssembleNote(g.settings, markers, nil), nil
}

func headText(headwords []dictionary.Headword) string {
	for _, h := range headwords {
		if !h.SearchOnly {
			return h.Text
		}
	}
	return ""
}

// readWordList reads one expression per line, skipping blanks and
// #-comments.
func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseWordList(f)
}

func parseWordList(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
