package checker

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellcheck/pkg/lexicon"
)

type fakeStore struct {
	words map[string]struct{}
	err   error
}

func newFakeStore(words ...string) *fakeStore {
	s := &fakeStore{words: make(map[string]struct{})}
	for _, w := range words {
		s.words[w] = struct{}{}
	}
	return s
}

func (s *fakeStore) Add(_ context.Context, word string) error {
	if s.err != nil {
		return s.err
	}
	s.words[word] = struct{}{}
	return nil
}

func (s *fakeStore) Remove(_ context.Context, word string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.words, word)
	return nil
}

func (s *fakeStore) All(_ context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out, nil
}

func newChecker(t *testing.T, words string, cfg Config, store CustomStore) *Checker {
	t.Helper()
	lex, err := lexicon.Load(strings.NewReader(words))
	require.NoError(t, err)
	return NewWithLexicon(context.Background(), lex, cfg, store)
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"It", "s", "a", "cat", "dog"}, Tokens("It's a cat42dog!"))
	assert.Empty(t, Tokens("123 ... 456"))
}

func TestCheckWordKnown(t *testing.T) {
	chk := newChecker(t, "the cat sat", Config{}, nil)
	assert.Nil(t, chk.CheckWord("cat"))
	assert.Nil(t, chk.CheckWord("CAT"))
	assert.Nil(t, chk.CheckWord("Sat"))
}

func TestCheckWordUnknown(t *testing.T) {
	chk := newChecker(t, "the cat sat", Config{}, nil)

	rep := chk.CheckWord("Teh")
	require.NotNil(t, rep)
	assert.Equal(t, "teh", rep.Word)
	assert.Equal(t, []string{"the"}, rep.Suggestions)

	rep = chk.CheckWord("xyz")
	require.NotNil(t, rep)
	assert.Empty(t, rep.Suggestions)
}

func TestCheckText(t *testing.T) {
	chk := newChecker(t, "the cat sat on a mat", Config{}, nil)

	reports := chk.CheckText("Teh cat sat on teh mat!")
	require.Len(t, reports, 2)
	// one report per occurrence, in input order
	assert.Equal(t, "teh", reports[0].Word)
	assert.Equal(t, "teh", reports[1].Word)
	assert.Equal(t, []string{"the"}, reports[0].Suggestions)
}

func TestCheckTextSplitSuggestion(t *testing.T) {
	chk := newChecker(t, "a cat", Config{}, nil)
	reports := chk.CheckText("acat")
	require.Len(t, reports, 1)
	assert.Contains(t, reports[0].Suggestions, "a cat")
}

func TestMinWordLength(t *testing.T) {
	chk := newChecker(t, "the cat", Config{MinWordLength: 3}, nil)
	assert.Nil(t, chk.CheckWord("zq"))
	assert.NotNil(t, chk.CheckWord("zqw"))
}

func TestCheckReader(t *testing.T) {
	chk := newChecker(t, "the cat sat", Config{}, nil)
	reports, err := chk.CheckReader(strings.NewReader("the\nteh cat\nsat"))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "teh", reports[0].Word)
}

func TestCustomWordsLoadedFromStore(t *testing.T) {
	chk := newChecker(t, "the cat", Config{}, newFakeStore("Golang"))
	assert.True(t, chk.Contains("golang"))
	assert.Nil(t, chk.CheckWord("GOLANG"))
}

func TestCustomStoreFailureIsNotFatal(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	chk := newChecker(t, "the cat", Config{}, store)
	assert.True(t, chk.Contains("cat"))
}

func TestAddRemoveCustomWord(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	chk := newChecker(t, "the cat", Config{}, store)

	require.NoError(t, chk.AddCustomWord(ctx, "Golang"))
	assert.True(t, chk.Contains("golang"))
	assert.Contains(t, store.words, "golang")

	require.NoError(t, chk.RemoveCustomWord(ctx, "golang"))
	assert.False(t, chk.Contains("golang"))
	assert.NotContains(t, store.words, "golang")
}

func TestCustomWordsFeedSuggestions(t *testing.T) {
	chk := newChecker(t, "", Config{}, newFakeStore("cat"))
	rep := chk.CheckWord("cats")
	require.NotNil(t, rep)
	assert.Equal(t, []string{"cat"}, rep.Suggestions)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, Report{Word: "teh", Suggestions: []string{"the", "tea"}}))
	assert.Equal(t, "teh:\nthe\ntea\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteReport(&buf, Report{Word: "xyz"}))
	assert.Equal(t, "xyz:\n(no suggestions)\n", buf.String())
}
