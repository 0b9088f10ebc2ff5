package options

// DefaultOptions is the engine configuration used when no options are given:
// the lowercase English alphabet and a single space between split halves.
var DefaultOptions = SuggestOptions{
	Alphabet:       "abcdefghijklmnopqrstuvwxyz",
	SplitSeparator: " ",
}

type SuggestOptions struct {
	Alphabet       string
	SplitSeparator string
}

type Options interface {
	Apply(options *SuggestOptions)
}

type FuncConfig struct {
	ops func(options *SuggestOptions)
}

func (w FuncConfig) Apply(conf *SuggestOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SuggestOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// WithAlphabet sets the letters tried by the substitution and insertion
// passes.
func WithAlphabet(alphabet string) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.Alphabet = alphabet
	})
}

// WithSplitSeparator sets the string joining the two halves of a split
// suggestion.
func WithSplitSeparator(sep string) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.SplitSeparator = sep
	})
}
