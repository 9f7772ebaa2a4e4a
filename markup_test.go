package tokeniser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectSegments(text string) []segment {
	segments := make([]segment, 0, 4)
	forEachSegment(strings.NewReader(text), func(seg segment) {
		segments = append(segments, seg)
	})
	return segments
}

func TestSegmentPlainText(t *testing.T) {
	segments := collectSegments("rumahnya sangat besar")
	assert.Equal(t, []segment{
		{markup: false, text: "rumahnya sangat besar"}}, segments)
}

func TestSegmentTags(t *testing.T) {
	segments := collectSegments("<b>rumahnya</b> besar")
	assert.Equal(t, []segment{
		{markup: true, text: "<b>"},
		{markup: false, text: "rumahnya"},
		{markup: true, text: "</b>"},
		{markup: false, text: " besar"},
	}, segments)
}

func TestSegmentRequotesAttributes(t *testing.T) {
	segments := collectSegments(`<a href=x>itu</a>`)
	assert.Equal(t, segment{markup: true, text: `<a href="x">`},
		segments[0])
}

func TestSegmentPreservesInteriorWhitespace(t *testing.T) {
	segments := collectSegments("<i>satu  dua\n tiga</i>")
	assert.Equal(t, segment{markup: false, text: "satu  dua\n tiga"},
		segments[1])
}

func TestSegmentUnterminatedTagIsText(t *testing.T) {
	segments := collectSegments("makan <tag rumah")
	assert.Equal(t, []segment{
		{markup: false, text: "makan "},
		{markup: false, text: "<tag rumah"},
	}, segments)
}

func TestSegmentLoneBracketIsText(t *testing.T) {
	segments := collectSegments("2 < 3")
	assert.Equal(t, []segment{{markup: false, text: "2 < 3"}}, segments)
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Empty(t, collectSegments(""))
}

func TestSegmentUnescapesEntities(t *testing.T) {
	segments := collectSegments("satu &amp; dua")
	assert.Equal(t, "satu & dua", segments[0].text)
}
