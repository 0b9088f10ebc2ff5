package suggest

import (
	"sort"

	"spellcheck/pkg/options"
)

// Dict is the membership test candidates are filtered against.
type Dict interface {
	Contains(word string) bool
}

// Suggester enumerates dictionary words reachable from a misspelled word by
// a single edit: deleting a character, substituting a character, inserting
// a character, swapping two neighboring characters, or splitting the word
// into two known words.
type Suggester struct {
	opts options.SuggestOptions
}

func NewSuggester(opts ...options.Options) *Suggester {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	return &Suggester{opts: conf}
}

var defaultSuggester = NewSuggester()

// Candidates runs a Suggester with DefaultOptions.
func Candidates(word string, dict Dict) []string {
	return defaultSuggester.Candidates(word, dict)
}

// Candidates returns every word in dict reachable from word by exactly one
// edit, sorted ascending with no duplicates. word is expected to be a
// lowercase alphabetic token absent from dict; since every candidate is
// membership-tested, the result never contains word itself. Split
// suggestions contain the separator, which sorts before any letter.
func (s *Suggester) Candidates(word string, dict Dict) []string {
	seen := make(map[string]struct{})

	// Delete any one of the characters.
	for i := 0; i < len(word); i++ {
		s.probe(word[:i]+word[i+1:], dict, seen)
	}

	// Change any character to any letter of the alphabet.
	for i := 0; i < len(word); i++ {
		for j := 0; j < len(s.opts.Alphabet); j++ {
			s.probe(word[:i]+string(s.opts.Alphabet[j])+word[i+1:], dict, seen)
		}
	}

	// Insert any letter at any position, both ends included.
	for i := 0; i <= len(word); i++ {
		for j := 0; j < len(s.opts.Alphabet); j++ {
			s.probe(word[:i]+string(s.opts.Alphabet[j])+word[i:], dict, seen)
		}
	}

	// Swap any two neighboring characters.
	for i := 0; i+1 < len(word); i++ {
		s.probe(word[:i]+string(word[i+1])+string(word[i])+word[i+2:], dict, seen)
	}

	// Split into two words; both halves must be known on their own.
	for i := 1; i < len(word); i++ {
		if dict.Contains(word[:i]) && dict.Contains(word[i:]) {
			seen[word[:i]+s.opts.SplitSeparator+word[i:]] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for cand := range seen {
		out = append(out, cand)
	}
	sort.Strings(out)
	return out
}

func (s *Suggester) probe(cand string, dict Dict, seen map[string]struct{}) {
	if dict.Contains(cand) {
		seen[cand] = struct{}{}
	}
}
