package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// ErrSizeMismatch is returned by Load when WithExpectedLen is set and the
// loaded word count differs from the expected one.
var ErrSizeMismatch = errors.New("lexicon: word count mismatch")

// Option configures Load.
type Option func(*loadConfig)

type loadConfig struct {
	expectedLen int
}

// WithExpectedLen makes Load fail with ErrSizeMismatch unless the lexicon
// ends up with exactly n distinct words. Used as an integrity check against
// a known dictionary snapshot; zero disables the check.
func WithExpectedLen(n int) Option {
	return func(c *loadConfig) { c.expectedLen = n }
}

// Lexicon is an immutable, case-insensitive set of words. Entries are
// lowercased at load time, so a Lexicon is safe to share across goroutines
// without locking.
type Lexicon struct {
	words map[string]struct{}
}

// Load reads whitespace-delimited tokens from r, lowercases each and builds
// the set. Duplicate tokens collapse.
func Load(r io.Reader, opts ...Option) (*Lexicon, error) {
	var cfg loadConfig
	for _, o := range opts {
		o(&cfg)
	}

	words := make(map[string]struct{})
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		words[strings.ToLower(s.Text())] = struct{}{}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read: %w", err)
	}

	if cfg.expectedLen > 0 && len(words) != cfg.expectedLen {
		return nil, fmt.Errorf("lexicon: loaded %d words, expected %d: %w",
			len(words), cfg.expectedLen, ErrSizeMismatch)
	}
	return &Lexicon{words: words}, nil
}

// LoadFile memory-maps the word list at path and builds the set from it.
func LoadFile(path string, opts ...Option) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("lexicon: stat %s: %w", path, err)
	}
	// mmap rejects zero-length files
	if fi.Size() == 0 {
		return Load(strings.NewReader(""), opts...)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("lexicon: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return Load(bytes.NewReader(m), opts...)
}

// Contains reports whether word is in the lexicon. The lookup is
// case-insensitive and never fails.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int { return len(l.words) }
