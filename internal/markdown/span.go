package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// SpanKind identifies the inline formatting of a Span.
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// Span is a run of inline text with a single formatting kind.
// URL is set for Link and Image spans only; for images Text holds the alt text.
type Span struct {
	Text string
	Kind SpanKind
	URL  string
}

// Match is an image or link found in inline text.
type Match struct {
	Text string
	URL  string
}

// Precompiled inline patterns.
var (
	// ![alt](url): alt without brackets, url without parentheses
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)

	// [text](url); matches preceded by '!' are images and skipped by findLinks
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// delimiterRules is the order in which inline delimiters are split.
// "**" must come before "*".
var delimiterRules = []struct {
	delimiter string
	kind      SpanKind
}{
	{"**", Bold},
	{"*", Italic},
	{"_", Italic},
	{"`", Code},
}

// TextToSpans splits inline markdown into typed spans.
// Images are extracted first, then links, then bold, italic and code.
// Each stage only looks inside Plain spans produced by earlier stages.
func TextToSpans(text string) ([]Span, error) {
	spans := []Span{{Text: text, Kind: Plain}}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)

	var err error
	for _, rule := range delimiterRules {
		spans, err = SplitDelimiter(spans, rule.delimiter, rule.kind)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// SplitDelimiter splits every Plain span on delimiter. Text between pairs
// becomes kind, text outside stays Plain, and empty pieces are dropped.
// A Plain span with an odd number of delimiters is an error.
func SplitDelimiter(spans []Span, delimiter string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain || !strings.Contains(s.Text, delimiter) {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Text, delimiter)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnmatchedDelimiter, delimiter, s.Text)
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, Span{Text: part, Kind: Plain})
			} else {
				out = append(out, Span{Text: part, Kind: kind})
			}
		}
	}
	return out, nil
}

// ExtractImages returns every ![alt](url) in text, in order.
func ExtractImages(text string) []Match {
	return toMatches(text, findImages(text))
}

// ExtractLinks returns every [text](url) in text that is not an image, in order.
func ExtractLinks(text string) []Match {
	return toMatches(text, findLinks(text))
}

// SplitImages splits Plain spans around image syntax into Image spans.
func SplitImages(spans []Span) []Span {
	return splitPattern(spans, Image, findImages)
}

// SplitLinks splits Plain spans around link syntax into Link spans.
func SplitLinks(spans []Span) []Span {
	return splitPattern(spans, Link, findLinks)
}

func findImages(text string) [][]int {
	return imagePattern.FindAllStringSubmatchIndex(text, -1)
}

func findLinks(text string) [][]int {
	all := linkPattern.FindAllStringSubmatchIndex(text, -1)
	out := all[:0]
	for _, m := range all {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		out = append(out, m)
	}
	return out
}

func toMatches(text string, locs [][]int) []Match {
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, len(locs))
	for i, m := range locs {
		matches[i] = Match{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]}
	}
	return matches
}

// splitPattern cuts each Plain span at the locations returned by find.
// Each location holds the full match followed by the text and URL groups.
func splitPattern(spans []Span, kind SpanKind, find func(string) [][]int) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}
		locs := find(s.Text)
		if len(locs) == 0 {
			out = append(out, s)
			continue
		}

		pos := 0
		for _, m := range locs {
			if m[0] > pos {
				out = append(out, Span{Text: s.Text[pos:m[0]], Kind: Plain})
			}
			out = append(out, Span{
				Text: s.Text[m[2]:m[3]],
				Kind: kind,
				URL:  s.Text[m[4]:m[5]],
			})
			pos = m[1]
		}
		if pos < len(s.Text) {
			out = append(out, Span{Text: s.Text[pos:], Kind: Plain})
		}
	}
	return out
}
