package domain

import (
	"regexp"
	"strings"
)

// LineKind is the structural role of one line in an ATF document.
// Every line is classified into exactly one kind before emission.
type LineKind int

const (
	// LineBlank is a line containing only whitespace.
	LineBlank LineKind = iota

	// LineMetadata is a document header line, e.g. "&P100001 = AO 12345".
	LineMetadata

	// LineProtocol is an ATF protocol line, e.g. "#atf: lang sux".
	LineProtocol

	// LineComment is a free-text comment, e.g. "# scribal note".
	LineComment

	// LineStructure is a structural marker, e.g. "@tablet" or "@obverse".
	LineStructure

	// LineText is a transliteration line: a line-number label followed by
	// a period, whitespace and the transliterated text, e.g. "1. lugal-a-ni".
	LineText

	// LineUnknown is anything else. Unknown lines are never an error;
	// they pass through rendering unchanged.
	LineUnknown
)

// String returns the lowercase name of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineMetadata:
		return "metadata"
	case LineProtocol:
		return "protocol"
	case LineComment:
		return "comment"
	case LineStructure:
		return "structure"
	case LineText:
		return "text"
	default:
		return "unknown"
	}
}

// Line is one classified line of an ATF document.
// Label, Gap and Body are only populated for LineText.
type Line struct {
	// Raw is the line exactly as read, without the trailing newline.
	Raw string

	// Kind is the structural role of the line.
	Kind LineKind

	// Label is the line-number marker including its period, e.g. "3.".
	Label string

	// Gap is the whitespace between the label and the body. It is
	// reproduced on the synthesized conversion line so the glyphs align
	// under the transliteration they belong to.
	Gap string

	// Body is the transliterated text after the label.
	Body string
}

// textLine matches a transliteration line: a decimal line number, a
// period, optional horizontal whitespace, then the rest of the line.
// A line starting with a digit but missing the period does not match
// and is classified LineUnknown.
var textLine = regexp.MustCompile(`^([0-9]+\.)([ \t]*)(.*)$`)

// ClassifyLine determines the structural role of a single raw line.
// Classification never fails; malformed lines become LineUnknown.
func ClassifyLine(raw string) Line {
	if strings.TrimSpace(raw) == "" {
		return Line{Raw: raw, Kind: LineBlank}
	}

	// "#atf:" must be checked before the generic comment prefix.
	switch {
	case strings.HasPrefix(raw, "#atf:"):
		return Line{Raw: raw, Kind: LineProtocol}
	case strings.HasPrefix(raw, "#"):
		return Line{Raw: raw, Kind: LineComment}
	case strings.HasPrefix(raw, "@"):
		return Line{Raw: raw, Kind: LineStructure}
	case strings.HasPrefix(raw, "&"):
		return Line{Raw: raw, Kind: LineMetadata}
	}

	if m := textLine.FindStringSubmatch(raw); m != nil {
		return Line{
			Raw:   raw,
			Kind:  LineText,
			Label: m[1],
			Gap:   m[2],
			Body:  m[3],
		}
	}

	return Line{Raw: raw, Kind: LineUnknown}
}

// Convertible reports whether the line carries transliteration that is
// eligible for glyph conversion.
func (l Line) Convertible() bool {
	return l.Kind == LineText
}

// Tokenize splits a transliteration body into its word tokens. Tokens
// are maximal whitespace-delimited substrings; embedded markup such as
// determinative braces ("lagasz{ki}-ke4") stays inside its token, since
// a determinative modifies the rendering of the adjacent word.
func Tokenize(body string) []string {
	return strings.Fields(body)
}
