package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driving"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

// Ensure SignListService implements the interface.
var _ driving.SignListService = (*SignListService)(nil)

// SignListService builds ordered glyph-to-transliteration mappings for
// a whole text, one entry per distinct glyph.
type SignListService struct {
	converter driven.Converter
}

// NewSignListService creates a new sign list service.
func NewSignListService(converter driven.Converter) *SignListService {
	return &SignListService{converter: converter}
}

// Build scans the text from r and returns the sign list. Flag
// characters are stripped before lookup since damage annotations are
// irrelevant to a sign inventory. Unrecognised signs are collected.
func (s *SignListService) Build(ctx context.Context, r io.Reader) (*domain.SignList, error) {
	if s.converter == nil {
		return nil, domain.ErrConverterUnavailable
	}

	list := domain.NewSignList()
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			return nil, fmt.Errorf("line %d: %w", lineNo, domain.ErrInvalidEncoding)
		}

		for _, token := range domain.Tokenize(raw) {
			signs, _ := domain.SplitSigns(token)
			for _, sign := range signs {
				if err := s.addSign(ctx, list, sign); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return list, nil
}

// addSign converts one sign and records it in the list.
func (s *SignListService) addSign(ctx context.Context, list *domain.SignList, sign string) error {
	sign = domain.StripFlags(sign)
	if sign == "" || domain.PassThrough(sign) {
		return nil
	}

	norm, err := domain.NormalizeSign(sign)
	if err != nil {
		return fmt.Errorf("normalising %q: %w", sign, err)
	}

	glyph, err := s.converter.Convert(ctx, norm)
	switch {
	case err == nil:
		list.Add(glyph, norm)
		return nil
	case errors.Is(err, domain.ErrUnrecognisedSign):
		logger.Warn("no glyph mapping for %q", sign)
		list.AddUnrecognised(norm)
		return nil
	default:
		return fmt.Errorf("converting %q: %w", sign, err)
	}
}
