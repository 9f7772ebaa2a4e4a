package tokeniser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var abbreviationTests = map[string]bool{
	"U.S.A.":  true,
	"A.":      true,
	"a.b.":    true,
	"-.":      true,
	"U.S.A":   false,
	"Dr.":     false,
	"...":     false,
	"3.":      false,
	".":       false,
	"":        false,
	"rumah":   false,
	"a.b":     false,
	"a..":     false,
}

func TestIsAbbreviation(t *testing.T) {
	for candidate, expected := range abbreviationTests {
		assert.Equal(t, expected, isAbbreviation(candidate),
			"candidate %q", candidate)
	}
}

func TestIsNumberPeriod(t *testing.T) {
	assert.True(t, isNumberPeriod("3."))
	assert.True(t, isNumberPeriod("1945."))
	assert.False(t, isNumberPeriod("."))
	assert.False(t, isNumberPeriod("3"))
	assert.False(t, isNumberPeriod("3a."))
	assert.False(t, isNumberPeriod("3.5"))
}

type insertBreaksTest struct {
	run      string
	expected string
}

var insertBreaksTests = []insertBreaksTest{
	{"apa?!", "apa? !"},
	{"makan,minum", "makan, minum"},
	{"satu:dua", "satu: dua"},
	{"kata...lalu", "kata ... lalu"},
	{"lalu...", "lalu ... "},
	{"3,5", "3,5"},
	{"10.30", "10.30"},
	{"a;b", "a; b"},
	{"rumah", "rumah"},
	{"a.b", "a. b"},
}

func TestInsertBreaks(t *testing.T) {
	for _, test := range insertBreaksTests {
		assert.Equal(t, test.expected, insertBreaks(test.run),
			"run %q", test.run)
	}
}

func TestStripPunct(t *testing.T) {
	core, lead, trail := stripPunct(`"(rumah),`)
	assert.Equal(t, "rumah", core)
	assert.Equal(t, []string{`"`, "("}, lead)
	// Trailing punctuation accumulates outer to inner.
	assert.Equal(t, []string{",", ")"}, trail)

	core, lead, trail = stripPunct("rumah")
	assert.Equal(t, "rumah", core)
	assert.Empty(t, lead)
	assert.Empty(t, trail)

	core, _, _ = stripPunct(`"("`)
	assert.Equal(t, "", core)
}

func TestProtectedRun(t *testing.T) {
	assert.True(t, indoTokeniser.protectedRun("U.S.A."))
	assert.True(t, indoTokeniser.protectedRun("(U.S.A.)"))
	assert.True(t, indoTokeniser.protectedRun("Dr."))
	assert.True(t, indoTokeniser.protectedRun("A.B."))
	assert.False(t, indoTokeniser.protectedRun("rumah."))
	assert.False(t, indoTokeniser.protectedRun("apa?!"))
}

func TestSplitCandidatesKeepsProtectedRuns(t *testing.T) {
	candidates := indoTokeniser.splitCandidates("ada di (U.S.A.) kan?!")
	assert.Equal(t,
		[]string{"ada", "di", "(U.S.A.)", "kan?", "!"}, candidates)
}

func TestIsCliticForm(t *testing.T) {
	assert.True(t, isCliticForm("-nya"))
	assert.True(t, isCliticForm("-mu"))
	assert.True(t, isCliticForm("-ku"))
	assert.True(t, isCliticForm("ku-"))
	assert.True(t, isCliticForm("buku-nya"))
	assert.False(t, isCliticForm("buku-buku"))
	assert.False(t, isCliticForm("rumah"))
}

func TestHyphenatedCompoundsNotSplit(t *testing.T) {
	tokens := indoTokeniser.tokeniseWords("buku-buku anak-anak")
	assert.Equal(t, Tokens{"buku-buku", "anak-anak"}, tokens)
}
