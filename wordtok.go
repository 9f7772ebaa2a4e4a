package tokeniser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Punctuation classes for the fixpoint stripper. These are explicit
// finite character sets; the hot path does membership tests only.
const prefixPunct = `([{"'` + "‘“«"
const suffixPunct = `)]}"',;:!?%` + "’”»"

func isPrefixPunct(r rune) bool {
	return strings.ContainsRune(prefixPunct, r)
}

func isSuffixPunct(r rune) bool {
	return strings.ContainsRune(suffixPunct, r)
}

// isAbbreviation reports whether the candidate consists of one or more
// letter-or-hyphen plus period groups, e.g. `U.S.A.` or `A.`. The
// shape is recognised structurally, without a lookup table.
func isAbbreviation(s string) bool {
	groups := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
		i += size
		if i >= len(s) || s[i] != '.' {
			return false
		}
		i++
		groups++
	}
	return groups > 0
}

// isNumberPeriod reports a pure digit sequence with a trailing period,
// e.g. the ordinal `3.`, which keeps its period attached.
func isNumberPeriod(s string) bool {
	if len(s) < 2 || !strings.HasSuffix(s, ".") {
		return false
	}
	for _, r := range s[:len(s)-1] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// insertBreaks spaces out glued punctuation inside a single
// whitespace-free run: around ellipses, after `;` `!` `?` before any
// character, and after `.` `,` `:` unless a digit or period follows.
func insertBreaks(run string) string {
	var b strings.Builder
	b.Grow(len(run) + 8)
	runes := []rune(run)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.' {
			b.WriteString(" ... ")
			i += 2
			continue
		}
		b.WriteRune(r)
		if i+1 >= len(runes) {
			continue
		}
		switch r {
		case ';', '!', '?':
			b.WriteByte(' ')
		case '.', ',', ':':
			next := runes[i+1]
			if !unicode.IsDigit(next) && next != '.' {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// stripPunct runs the fixpoint stripper: leading open punctuation is
// peeled into lead, trailing close punctuation into trail. Trail is
// collected outer to inner (right to left); one reversal at emission
// restores left-to-right order. The remaining core may be empty.
func stripPunct(s string) (core string, lead []string, trail []string) {
	core = s
	for core != "" {
		if r, size := utf8.DecodeRuneInString(core); isPrefixPunct(r) {
			lead = append(lead, core[:size])
			core = core[size:]
			continue
		}
		if r, size := utf8.DecodeLastRuneInString(core); isSuffixPunct(r) {
			trail = append(trail, core[len(core)-size:])
			core = core[:len(core)-size]
			continue
		}
		break
	}
	return core, lead, trail
}

func (t *Tokeniser) isException(s string) bool {
	return t.Exceptions.Contains(s)
}

// protectedRun reports whether a run must survive the punctuation
// pre-pass intact: exception-set members and abbreviation-shaped
// words, either bare or wrapped in bracketing punctuation. Without
// this guard the pre-pass would shatter `U.S.A.` before the exception
// check could see it.
func (t *Tokeniser) protectedRun(run string) bool {
	if t.isException(run) || isAbbreviation(run) {
		return true
	}
	core, _, _ := stripPunct(run)
	if core == run {
		return false
	}
	return t.isException(core) || isAbbreviation(core)
}

// splitCandidates splits clitic-annotated text into tokenizer
// candidates, spacing out glued punctuation except inside protected
// runs.
func (t *Tokeniser) splitCandidates(text string) []string {
	fields := strings.Fields(text)
	candidates := make([]string, 0, len(fields))
	for _, field := range fields {
		if t.protectedRun(field) {
			candidates = append(candidates, field)
			continue
		}
		candidates = append(candidates, strings.Fields(insertBreaks(field))...)
	}
	return candidates
}

// isCliticForm matches the shapes the clitic separator emits: the
// marker fragments `-nya`, `-mu`, `-ku` and `ku-`, and hyphen-joined
// forms such as `buku-nya`. These fall through the hyphenated-compound
// guard instead of being emitted early.
func isCliticForm(s string) bool {
	lower := strings.ToLower(s)
	for _, rule := range cliticSuffixes {
		if strings.HasSuffix(lower, "-"+rule.suffix) {
			return true
		}
	}
	return lower == cliticPrefix+"-"
}

// tokeniseWords turns a clitic-annotated text run into the final flat
// token list.
func (t *Tokeniser) tokeniseWords(text string) Tokens {
	tokens := make(Tokens, 0, 16)
	for _, candidate := range t.splitCandidates(text) {
		tokens = append(tokens, t.tokeniseCandidate(candidate)...)
	}
	return tokens
}

// tokeniseCandidate applies the per-candidate priority order: exact
// exception, abbreviation shape, hyphenated compounds, fixpoint
// punctuation stripping, exception re-check on the stripped core, and
// finally period disambiguation.
func (t *Tokeniser) tokeniseCandidate(c string) Tokens {
	if t.isException(c) || isAbbreviation(c) {
		return Tokens{Token(c)}
	}
	if strings.Contains(c, "-") && !isCliticForm(c) {
		// Hyphenated compounds are not split further.
		return Tokens{Token(c)}
	}
	core, lead, trail := stripPunct(c)
	tokens := make(Tokens, 0, len(lead)+len(trail)+2)
	for _, open := range lead {
		tokens = append(tokens, Token(open))
	}
	switch {
	case core == "":
	case t.isException(core) || isAbbreviation(core):
		tokens = append(tokens, Token(core))
	case splitsFinalPeriod(core):
		tokens = append(tokens, Token(core[:len(core)-1]), Token("."))
	default:
		tokens = append(tokens, Token(core))
	}
	for idx := len(trail) - 1; idx >= 0; idx-- {
		tokens = append(tokens, Token(trail[idx]))
	}
	return tokens
}

// splitsFinalPeriod decides whether a trailing period is word-final
// punctuation. Ellipses, bare periods and digit sequences such as `3.`
// keep theirs attached.
func splitsFinalPeriod(core string) bool {
	return len(core) > 1 &&
		strings.HasSuffix(core, ".") &&
		!strings.HasSuffix(core, "..") &&
		!isNumberPeriod(core)
}
