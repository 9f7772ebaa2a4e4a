package tokeniser

import (
	"io"

	"golang.org/x/net/html"
)

// segment is one markup-delimited slice of the input: either a verbatim
// tag or a run of plain text between tags.
type segment struct {
	markup bool
	text   string
}

// forEachSegment walks the input with a streaming tag tokenizer,
// calling visit for every markup tag and text run in document order.
// Tags are re-rendered with consistently quoted attributes and are
// never inspected by the word-level stages. Malformed markup is
// recovered as literal text; the walk itself never fails.
func forEachSegment(reader io.Reader, visit func(segment)) {
	z := html.NewTokenizer(reader)
	for {
		switch z.Next() {
		case html.ErrorToken:
			// An unterminated tag at the end of the input is passed
			// through as text rather than dropped.
			if raw := z.Raw(); len(raw) > 0 {
				visit(segment{text: string(raw)})
			}
			return
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			visit(segment{markup: true, text: z.Token().String()})
		case html.TextToken:
			visit(segment{text: z.Token().Data})
		case html.CommentToken, html.DoctypeToken:
			// Opaque to the tokenizer, reproduced verbatim.
			visit(segment{markup: true, text: string(z.Raw())})
		}
	}
}
