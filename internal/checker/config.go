package checker

type Config struct {
	// DictionaryPath is the word list New loads the base lexicon from.
	DictionaryPath string
	// ExpectedWords, when non-zero, asserts the dictionary's exact
	// distinct-word count at load time.
	ExpectedWords int
	// MinWordLength skips tokens shorter than this many characters.
	MinWordLength int
}
