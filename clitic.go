package tokeniser

import (
	"strings"
	"unicode/utf8"
)

// cliticRule is one entry of the fixed clitic table: the suffix text
// and the number of characters it occupies at the end of a host word.
type cliticRule struct {
	suffix string
	length int
}

// Suffix rules are tried in this order; the first lexicon-attested
// split wins. The prefix rule only covers `ku`.
var cliticSuffixes = []cliticRule{
	{"nya", 3},
	{"mu", 2},
	{"ku", 2},
}

const cliticPrefix = "ku"

// wordPunct is the set of trailing characters the clitic separator
// detaches before any lexicon lookup.
const wordPunct = `!?.,'"()[]{}:;~_-`

func isWordPunct(r rune) bool {
	return strings.ContainsRune(wordPunct, r)
}

// separateClitics rewrites a single whitespace-delimited word into its
// `root -clitic` or `prefix- root` form when the lexicon attests the
// root. Results are memoized per word.
func (t *Tokeniser) separateClitics(word string) string {
	if cached, ok := t.Cache.Get(word); ok {
		return cached.(string)
	}
	out := t.analyseWord(word)
	t.Cache.Add(word, out)
	return out
}

func (t *Tokeniser) analyseWord(word string) string {
	stem := word
	punct := ""
	if last, size := utf8.DecodeLastRuneInString(word); size > 0 && isWordPunct(last) {
		stem = word[:len(word)-size]
		punct = word[len(word)-size:]
	}
	if stem == "" {
		return word
	}
	lower := strings.ToLower(stem)

	// Isolated clitics never reach the lexicon.
	if lower == "nya" || lower == "mu" {
		return withPunct("-"+lower, punct)
	}

	// Suffix rules win over whole-word lexicon membership, so a lexicon
	// entry that is also a valid root+suffix combination still splits.
	for _, rule := range cliticSuffixes {
		if len(stem) <= rule.length || !strings.HasSuffix(lower, rule.suffix) {
			continue
		}
		root := stem[:len(stem)-rule.length]
		if t.inLexicon(root) {
			return withPunct(root+" -"+rule.suffix, punct)
		}
	}

	if strings.HasPrefix(lower, cliticPrefix) && len(stem) > 2 {
		root := stem[2:]
		if t.inLexicon(root) {
			// The marker keeps the original capitalisation, e.g. `Ku-`.
			return withPunct(stem[:2]+"- "+root, punct)
		}
	}

	if t.inLexicon(stem) {
		return withPunct(stem, punct)
	}

	// Unknown word: pass through as written, punctuation intact, so
	// protected strings like `U.S.A.` reach the general tokenizer whole.
	return word
}

func (t *Tokeniser) inLexicon(word string) bool {
	return t.Lexicon.Contains(strings.ToLower(word))
}

func withPunct(s string, punct string) string {
	if punct == "" {
		return s
	}
	return s + " " + punct
}

// normaliseQuotedKu splits a quote glued onto a following `ku` so that
// a quoted clitic prefix is seen as its own word.
func normaliseQuotedKu(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	for i := 0; i < len(text); i++ {
		c := text[i]
		b.WriteByte(c)
		if c != '\'' && c != '"' {
			continue
		}
		j := i + 1
		for j < len(text) && isSpaceByte(text[j]) {
			j++
		}
		if strings.HasPrefix(text[j:], "ku") {
			b.WriteByte(' ')
			i = j - 1
		}
	}
	return b.String()
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
