package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassifyLine_Kinds tests line classification for every kind
func TestClassifyLine_Kinds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind LineKind
	}{
		{"empty", "", LineBlank},
		{"whitespace only", "   \t  ", LineBlank},
		{"metadata", "&P100001 = AO 12345", LineMetadata},
		{"protocol", "#atf: lang sux", LineProtocol},
		{"comment", "# scribal note", LineComment},
		{"comment without space", "#note", LineComment},
		{"structure tablet", "@tablet", LineStructure},
		{"structure obverse", "@obverse", LineStructure},
		{"text", "1. lugal-a-ni", LineText},
		{"text multi digit", "12. szu ba-ti", LineText},
		{"digit without period", "3 lugal-a-ni", LineUnknown},
		{"prose", "some stray annotation", LineUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := ClassifyLine(tt.raw)
			assert.Equal(t, tt.kind, line.Kind)
			assert.Equal(t, tt.raw, line.Raw)
		})
	}
}

// TestClassifyLine_ProtocolBeforeComment tests that "#atf:" wins over "#"
func TestClassifyLine_ProtocolBeforeComment(t *testing.T) {
	assert.Equal(t, LineProtocol, ClassifyLine("#atf: use unicode").Kind)
	assert.Equal(t, LineComment, ClassifyLine("#atf this is not a protocol").Kind)
}

// TestClassifyLine_TextParts tests label, gap and body extraction
func TestClassifyLine_TextParts(t *testing.T) {
	line := ClassifyLine("3. lugal-a-ni")

	assert.Equal(t, LineText, line.Kind)
	assert.Equal(t, "3.", line.Label)
	assert.Equal(t, " ", line.Gap)
	assert.Equal(t, "lugal-a-ni", line.Body)
}

// TestClassifyLine_TextWideGap tests that the gap is captured verbatim
func TestClassifyLine_TextWideGap(t *testing.T) {
	line := ClassifyLine("10.\t  e2-gal")

	assert.Equal(t, "10.", line.Label)
	assert.Equal(t, "\t  ", line.Gap)
	assert.Equal(t, "e2-gal", line.Body)
}

// TestClassifyLine_TextEmptyBody tests a label with nothing after it
func TestClassifyLine_TextEmptyBody(t *testing.T) {
	line := ClassifyLine("4.")

	assert.Equal(t, LineText, line.Kind)
	assert.Equal(t, "4.", line.Label)
	assert.Empty(t, line.Gap)
	assert.Empty(t, line.Body)
}

// TestLine_Convertible tests that only text lines convert
func TestLine_Convertible(t *testing.T) {
	assert.True(t, ClassifyLine("1. lugal").Convertible())

	for _, raw := range []string{"", "&P100001", "#atf: lang sux", "# note", "@tablet", "stray"} {
		assert.False(t, ClassifyLine(raw).Convertible(), "line %q", raw)
	}
}

// TestLineKind_String tests kind names
func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "blank", LineBlank.String())
	assert.Equal(t, "metadata", LineMetadata.String())
	assert.Equal(t, "protocol", LineProtocol.String())
	assert.Equal(t, "comment", LineComment.String())
	assert.Equal(t, "structure", LineStructure.String())
	assert.Equal(t, "text", LineText.String())
	assert.Equal(t, "unknown", LineUnknown.String())
}

// TestTokenize tests whitespace tokenisation
func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"simple", "szu ba-ti", []string{"szu", "ba-ti"}},
		{"extra spaces", "  lugal   a-ni ", []string{"lugal", "a-ni"}},
		{"determinative stays in token", "lagasz{ki}-ke4", []string{"lagasz{ki}-ke4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.body))
		})
	}

	assert.Empty(t, Tokenize(""))
}
