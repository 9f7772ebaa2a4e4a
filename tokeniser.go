// Package tokeniser segments Indonesian text into tokens for
// part-of-speech tagging. It separates lexicon-attested clitics
// (`-nya`, `-mu`, `-ku`, `ku-`) from their host words and applies
// word/punctuation/abbreviation segmentation, treating embedded markup
// as opaque, unsplittable units.
package tokeniser

import (
	"errors"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set"
	lru "github.com/hashicorp/golang-lru"
)

const CLITIC_LRU_SZ = 16384
const TOKENCHAN_SZ = 256

// ErrNoLexicon is returned when a Tokeniser is constructed without a
// usable root lexicon. Clitic separation cannot run without one, so
// construction refuses rather than silently degrading.
var ErrNoLexicon = errors.New("tokeniser: lexicon is empty or unavailable")

// Token is one atomic output unit: a markup tag, a word, a punctuation
// mark, or a clitic marker fragment such as `-nya`. A Token never
// contains internal whitespace.
type Token string
type Tokens []Token

// IsMarkup reports whether the token is a verbatim markup tag, which is
// how the downstream tagger distinguishes tags from word tokens.
func (token Token) IsMarkup() bool {
	return len(token) > 1 && strings.HasPrefix(string(token), "<") &&
		strings.HasSuffix(string(token), ">")
}

// Join renders the token sequence space-joined on a single line.
func (tokens Tokens) Join() string {
	return tokens.render(" ")
}

// Lines renders the token sequence one token per line, the form the
// downstream tagger consumes.
func (tokens Tokens) Lines() string {
	return tokens.render("\n")
}

func (tokens Tokens) render(sep string) string {
	parts := make([]string, len(tokens))
	for idx := range tokens {
		parts[idx] = string(tokens[idx])
	}
	return strings.Join(parts, sep)
}

// Tokeniser holds the immutable lexical resources and a cache of
// per-word clitic analyses. All methods are safe for concurrent use
// across independent inputs once constructed.
type Tokeniser struct {
	Lexicon    mapset.Set
	Exceptions mapset.Set
	Cache      *lru.ARCCache
}

// NewTokeniser returns a Tokeniser over the given root lexicon and
// exception set. The lexicon is mandatory: nil or empty yields
// ErrNoLexicon. A nil exception set is accepted and degrades protected
// strings to abbreviation-pattern recognition only.
func NewTokeniser(lexicon mapset.Set, exceptions mapset.Set) (*Tokeniser, error) {
	if lexicon == nil || lexicon.Cardinality() == 0 {
		return nil, ErrNoLexicon
	}
	if exceptions == nil {
		exceptions = mapset.NewThreadUnsafeSet()
	}
	cache, _ := lru.NewARC(CLITIC_LRU_SZ)
	return &Tokeniser{
		Lexicon:    lexicon,
		Exceptions: exceptions,
		Cache:      cache,
	}, nil
}

// Tokenise segments a string into its ordered token sequence.
func (t *Tokeniser) Tokenise(text *string) Tokens {
	return t.TokeniseReader(strings.NewReader(*text))
}

// TokeniseReader segments the full contents of a reader. Markup tags
// pass through as single tokens; the text runs between them go through
// quote-prefix normalisation, clitic separation and the general
// tokenizer, in that order.
func (t *Tokeniser) TokeniseReader(reader io.Reader) Tokens {
	tokens := make(Tokens, 0, 64)
	forEachSegment(reader, func(seg segment) {
		tokens = append(tokens, t.tokeniseSegment(seg)...)
	})
	return tokens
}

// TokenStream returns an iterator function over the tokens of a
// reader. Each invocation returns one token, or nil once the input is
// exhausted.
func (t *Tokeniser) TokenStream(reader io.Reader) func() *Token {
	tokenChan := make(chan Token, TOKENCHAN_SZ)
	go func() {
		defer close(tokenChan)
		forEachSegment(reader, func(seg segment) {
			for _, token := range t.tokeniseSegment(seg) {
				tokenChan <- token
			}
		})
	}()
	return func() *Token {
		token, more := <-tokenChan
		if !more {
			return nil
		}
		return &token
	}
}

func (t *Tokeniser) tokeniseSegment(seg segment) Tokens {
	if seg.markup {
		return Tokens{Token(seg.text)}
	}
	return t.tokeniseRun(seg.text)
}

// tokeniseRun is the per-text-run pipeline: normalise quoted `ku`
// prefixes, separate clitics word by word, then hand the annotated
// text to the general tokenizer.
func (t *Tokeniser) tokeniseRun(text string) Tokens {
	text = normaliseQuotedKu(text)
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	annotated := make([]string, len(words))
	for idx := range words {
		annotated[idx] = t.separateClitics(words[idx])
	}
	return t.tokeniseWords(strings.Join(annotated, " "))
}
