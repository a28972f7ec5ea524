package trie

type settings struct {
	caseInsensitive bool
}

type Option func(*settings) *settings

func defaultSettings() *settings {
	return &settings{
		caseInsensitive: true,
	}
}

// WithCaseInsensitive sets whether keys are lower-cased before they touch the tree.
func WithCaseInsensitive(enabled bool) Option {
	return func(s *settings) *settings {
		s.caseInsensitive = enabled
		return s
	}
}
