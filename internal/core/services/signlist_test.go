package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
)

// TestSignListService_Build tests sign list construction over a text
func TestSignListService_Build(t *testing.T) {
	svc := NewSignListService(mapConverter(testSigns))

	list, err := svc.Build(context.Background(),
		strings.NewReader("lugal lugal-a\na-ni\n"))
	require.NoError(t, err)

	entries := list.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, "𒈗", entries[0].Glyph)
	assert.Equal(t, []string{"lugal"}, entries[0].Values)
	assert.Equal(t, "𒀀", entries[1].Glyph)
	assert.Equal(t, []string{"a"}, entries[1].Values)
	assert.Equal(t, "𒉌", entries[2].Glyph)
	assert.Equal(t, []string{"ni"}, entries[2].Values)
	assert.Empty(t, list.Unrecognised())
}

// TestSignListService_Build_SharedGlyph tests that distinct values
// mapping to one glyph share an entry
func TestSignListService_Build_SharedGlyph(t *testing.T) {
	signs := map[string]string{
		"lu2":   "𒇽",
		"lugal": "𒇽",
	}
	svc := NewSignListService(mapConverter(signs))

	list, err := svc.Build(context.Background(), strings.NewReader("lú lugal\n"))
	require.NoError(t, err)

	entries := list.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "𒇽", entries[0].Glyph)
	assert.Equal(t, []string{"lu2", "lugal"}, entries[0].Values)
}

// TestSignListService_Build_StripsFlags tests that damage annotations
// do not affect the inventory
func TestSignListService_Build_StripsFlags(t *testing.T) {
	svc := NewSignListService(mapConverter(testSigns))

	list, err := svc.Build(context.Background(),
		strings.NewReader("[lugal] lugal! a?\n"))
	require.NoError(t, err)

	entries := list.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"lugal"}, entries[0].Values)
	assert.Equal(t, []string{"a"}, entries[1].Values)
}

// TestSignListService_Build_SkipsUnreadable tests x-runs are ignored
func TestSignListService_Build_SkipsUnreadable(t *testing.T) {
	svc := NewSignListService(mapConverter(testSigns))

	list, err := svc.Build(context.Background(),
		strings.NewReader("x lugal xxx [x]\n"))
	require.NoError(t, err)

	require.Equal(t, 1, list.Len())
	assert.Equal(t, "𒈗", list.Entries()[0].Glyph)
}

// TestSignListService_Build_Unrecognised tests collection of signs
// without a glyph mapping
func TestSignListService_Build_Unrecognised(t *testing.T) {
	svc := NewSignListService(mapConverter(testSigns))

	list, err := svc.Build(context.Background(),
		strings.NewReader("lugal-zz qq-zz\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"zz", "qq"}, list.Unrecognised())
	assert.Equal(t, 1, list.Len())
}

// TestSignListService_Build_InvalidEncoding tests rejection of
// non-UTF-8 input with the offending line number
func TestSignListService_Build_InvalidEncoding(t *testing.T) {
	svc := NewSignListService(mapConverter(testSigns))

	_, err := svc.Build(context.Background(),
		strings.NewReader("lugal\n\xffbad\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "line 2")
}

// TestSignListService_NilConverter tests the unconfigured service
func TestSignListService_NilConverter(t *testing.T) {
	svc := NewSignListService(nil)

	_, err := svc.Build(context.Background(), strings.NewReader("lugal"))
	assert.ErrorIs(t, err, domain.ErrConverterUnavailable)
}

// TestSignListService_ConverterFailureAborts tests that an unreachable
// converter stops the scan
func TestSignListService_ConverterFailureAborts(t *testing.T) {
	svc := NewSignListService(failingConverter())

	_, err := svc.Build(context.Background(), strings.NewReader("lugal"))
	assert.ErrorIs(t, err, domain.ErrConverterUnavailable)
}
