package domain

import (
	"regexp"
	"strings"
)

// SignSeparators are the characters that separate signs within a line of
// transliteration. The regexp is kept separately because of the escaping
// of the dot.
var SignSeparators = []string{"-", " ", "."}

var signSeparator = regexp.MustCompile(`-| |\.`)

// replacements maps common transliteration shorthands onto the ASCII
// spellings the glyph converter expects. Uppercase forms are listed
// explicitly alongside their lowercase counterparts.
var replacements = map[rune]string{
	'š': "sz",
	'ṣ': "s,",
	'ṭ': "t,",
	'ĝ': "j",
	'ḫ': "h",
	'Š': "SZ",
	'Ṣ': "S,",
	'Ṭ': "T,",
	'Ĝ': "J",
	'Ḫ': "H",

	// Subscripted numbers correspond to actual numbers in the original.
	'₀': "0",
	'₁': "1",
	'₂': "2",
	'₃': "3",
	'₄': "4",
	'₅': "5",
	'₆': "6",
	'₇': "7",
	'₈': "8",
	'₉': "9",

	// Replace 'smart' quotes with normal characters.
	'‘': "'",
	'’': "'",
	'ʾ': "'",
	'“': `"`,
	'”': `"`,

	// Replace em-dash and en-dash with a normal dash.
	'–': "-",
	'—': "-",
}

// Accented vowels encode sign indices: an acute accent means index 2,
// a grave accent index 3. The accent is removed and the index appended.
var (
	acuteVowels = map[rune]rune{
		'á': 'a', 'é': 'e', 'í': 'i', 'ú': 'u',
		'Á': 'A', 'É': 'E', 'Í': 'I', 'Ú': 'U',
	}
	graveVowels = map[rune]rune{
		'à': 'a', 'è': 'e', 'ì': 'i', 'ù': 'u',
		'À': 'A', 'È': 'E', 'Ì': 'I', 'Ù': 'U',
	}
)

// Flag characters are annotations that attach to a sign without being
// part of it: an opening half-bracket stays in front of the rendered
// glyph, while damage and query flags trail it.
const (
	leadFlags  = "["
	trailFlags = "!?]"
)

// NormalizeSign rewrites a single sign into the ASCII form understood by
// the glyph converter: shorthand letters are expanded and accented
// vowels are replaced by their base vowel plus a sign-index digit
// (acute appends 2, grave appends 3). The input must be a single sign;
// a string still containing sign separators yields ErrNotASign.
func NormalizeSign(sign string) (string, error) {
	for _, sep := range SignSeparators {
		if strings.Contains(sign, sep) {
			return "", ErrNotASign
		}
	}

	var out strings.Builder
	var acute, grave int
	seen := make(map[rune]bool)
	for _, r := range sign {
		switch {
		case replacements[r] != "":
			out.WriteString(replacements[r])
		case acuteVowels[r] != 0:
			out.WriteRune(acuteVowels[r])
			if !seen[r] {
				seen[r] = true
				acute++
			}
		case graveVowels[r] != 0:
			out.WriteRune(graveVowels[r])
			if !seen[r] {
				seen[r] = true
				grave++
			}
		default:
			out.WriteRune(r)
		}
	}

	out.WriteString(strings.Repeat("2", acute))
	out.WriteString(strings.Repeat("3", grave))
	return out.String(), nil
}

// SplitSigns splits a line of transliteration into its signs and the
// separators between them. The returned slices have equal length; the
// final separator is always the empty string, so that joining
// signs[i]+seps[i] for all i reproduces the trimmed input.
func SplitSigns(line string) (signs, seps []string) {
	line = strings.TrimSpace(line)
	signs = signSeparator.Split(line, -1)
	seps = append(signSeparator.FindAllString(line, -1), "")
	return signs, seps
}

// SplitFlags separates a sign into the flag characters that belong in
// front of the rendered glyphs, the bare sign to convert, and the flag
// characters that trail the glyphs.
func SplitFlags(sign string) (lead, core, trail string) {
	var l, c, t strings.Builder
	for _, r := range sign {
		switch {
		case strings.ContainsRune(leadFlags, r):
			l.WriteRune(r)
		case strings.ContainsRune(trailFlags, r):
			t.WriteRune(r)
		default:
			c.WriteRune(r)
		}
	}
	return l.String(), c.String(), t.String()
}

// StripFlags removes all flag characters from a sign. Used when building
// sign lists, where damage annotations are irrelevant.
func StripFlags(sign string) string {
	_, core, _ := SplitFlags(sign)
	return core
}

// PassThrough reports whether no conversion attempt should be made for
// the sign: runs of x/X mark unreadable signs, and bare flag characters
// stand on their own.
func PassThrough(sign string) bool {
	if sign == "" {
		return false
	}

	lower := strings.ToLower(sign)
	if strings.Count(lower, "x") == len(lower) {
		return true
	}

	switch sign {
	case "?", "!", "[", "]":
		return true
	}
	return false
}
