package checker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"sync"

	"spellcheck/pkg/lexicon"
	"spellcheck/pkg/suggest"
)

// CustomStore persists user-added words across runs.
type CustomStore interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

// Report holds the outcome for one misspelled word.
type Report struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
}

// Checker tests words against a base lexicon plus a mutable overlay of
// custom words, and produces suggestions for the ones it does not know.
// The base lexicon is never mutated; runtime additions only touch the
// overlay, so concurrent checks need no coordination beyond its RWMutex.
type Checker struct {
	cfg   Config
	lex   *lexicon.Lexicon
	sug   *suggest.Suggester
	store CustomStore

	mu     sync.RWMutex
	custom map[string]struct{}
}

// New loads the base lexicon from cfg.DictionaryPath and builds a Checker
// around it. store may be nil.
func New(ctx context.Context, cfg Config, store CustomStore) (*Checker, error) {
	var opts []lexicon.Option
	if cfg.ExpectedWords > 0 {
		opts = append(opts, lexicon.WithExpectedLen(cfg.ExpectedWords))
	}
	lex, err := lexicon.LoadFile(cfg.DictionaryPath, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithLexicon(ctx, lex, cfg, store), nil
}

// NewWithLexicon builds a Checker around an already-loaded lexicon.
// Persisted custom words are merged into the overlay; a store failure here
// is logged and skipped, not fatal.
func NewWithLexicon(ctx context.Context, lex *lexicon.Lexicon, cfg Config, store CustomStore) *Checker {
	c := &Checker{
		cfg:    cfg,
		lex:    lex,
		sug:    suggest.NewSuggester(),
		store:  store,
		custom: make(map[string]struct{}),
	}
	c.loadCustomWords(ctx)
	return c
}

func (c *Checker) loadCustomWords(ctx context.Context) {
	if c.store == nil {
		return
	}
	words, err := c.store.All(ctx)
	if err != nil {
		log.Printf("warning: could not load custom words: %v", err)
		return
	}
	for _, w := range words {
		c.custom[strings.ToLower(w)] = struct{}{}
	}
}

var tokenRe = regexp.MustCompile(`[A-Za-z]+`)

// Tokens extracts the maximal alphabetic runs of text; everything else is a
// delimiter and is discarded.
func Tokens(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// Contains reports whether word is known, either from the base lexicon or
// the custom overlay. The lookup is case-insensitive.
func (c *Checker) Contains(word string) bool {
	lw := strings.ToLower(word)
	if c.lex.Contains(lw) {
		return true
	}
	c.mu.RLock()
	_, ok := c.custom[lw]
	c.mu.RUnlock()
	return ok
}

// CheckWord checks a single token and returns a Report when it is unknown,
// nil when it is known or shorter than the configured minimum.
func (c *Checker) CheckWord(token string) *Report {
	w := strings.ToLower(token)
	if len(w) < c.cfg.MinWordLength || c.Contains(w) {
		return nil
	}
	return &Report{Word: w, Suggestions: c.sug.Candidates(w, c)}
}

// CheckText tokenizes text and reports every unknown word, one Report per
// occurrence, in input order.
func (c *Checker) CheckText(text string) []Report {
	var reports []Report
	for _, tok := range Tokens(text) {
		if rep := c.CheckWord(tok); rep != nil {
			reports = append(reports, *rep)
		}
	}
	return reports
}

// CheckReader checks r line by line.
func (c *Checker) CheckReader(r io.Reader) ([]Report, error) {
	var reports []Report
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		reports = append(reports, c.CheckText(s.Text())...)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("checker: read input: %w", err)
	}
	return reports, nil
}

// AddCustomWord adds a word to the overlay and, when a store is configured,
// persists it.
func (c *Checker) AddCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(word)
	if c.store != nil {
		if err := c.store.Add(ctx, lw); err != nil {
			return err
		}
	}
	c.mu.Lock()
	c.custom[lw] = struct{}{}
	c.mu.Unlock()
	return nil
}

// RemoveCustomWord removes a word from the overlay and the store.
func (c *Checker) RemoveCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(word)
	if c.store != nil {
		if err := c.store.Remove(ctx, lw); err != nil {
			return err
		}
	}
	c.mu.Lock()
	delete(c.custom, lw)
	c.mu.Unlock()
	return nil
}
