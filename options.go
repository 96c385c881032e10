package corelex

// Options holds the toggles parsed from a matcher's option string (spec §3,
// §6). Unrecognized characters are ignored in place rather than rejected
// (BadOption, spec §7): a malformed option string leaves defaults in force.
type Options struct {
	// AnyAll admits "any/all" negated patterns. Its precise meaning is
	// engine-defined; this layer only records it (spec §9 Open Questions).
	AnyAll bool

	// EmptyFind allows an empty match to succeed once during FIND, at EOF.
	EmptyFind bool

	// TabWidth is the configured tab width, 1..9. Default 8. Consulted by
	// no operation in this layer (spec §9: "\i/\j indent semantics live in
	// the engine layer"); carried for engines that want it.
	TabWidth int
}

// DefaultOptions returns the zero-value-safe default option set.
func DefaultOptions() Options {
	return Options{TabWidth: 8}
}

// ParseOptions parses a short option string such as "A;N;T=4" into an
// Options value. Parsing is one pass, left to right; any character that
// does not start a recognized option (A, N, or T optionally followed by
// "=" and a single digit) is skipped.
func ParseOptions(s string) Options {
	opt := DefaultOptions()
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			opt.AnyAll = true
		case 'N':
			opt.EmptyFind = true
		case 'T':
			if i+2 < len(s) && s[i+1] == '=' && s[i+2] >= '1' && s[i+2] <= '9' {
				opt.TabWidth = int(s[i+2] - '0')
				i += 2
			}
		default:
			// BadOption: ignored, not an error.
		}
	}
	return opt
}
