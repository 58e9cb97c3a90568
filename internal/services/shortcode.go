package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
)

// charset defines the character set used for generating short codes.
// 62 symbols: 62^6 = ~56 billion possible 6-character codes.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultCodeLength is the length of generated short codes when none is configured.
const DefaultCodeLength = 6

// ReservedShortIDs are the static first path segments of the URL service.
// A code equal to one of them could never be resolved, so it is never handed out.
var ReservedShortIDs = []string{"docs", "shorten", "stats"}

// ExistsFunc reports whether a short code is already stored.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// ShortCodeGenerator draws random codes until one is absent from the store.
//
// The existence check and the later insert are two statements; two writers
// can still pick the same free code between them. Callers must insert with
// an insert-if-absent operation and ask for a new code when it reports a clash.
type ShortCodeGenerator struct {
	length      int
	maxAttempts int // 0 means unbounded
	exists      ExistsFunc
	reserved    map[string]bool
	draw        func(length int) (string, error)
}

// NewShortCodeGenerator creates a generator for codes of the given length.
// A non-positive length falls back to DefaultCodeLength; maxAttempts <= 0
// retries until a free code is found. Codes listed in reserved are redrawn
// like taken ones.
func NewShortCodeGenerator(length, maxAttempts int, exists ExistsFunc, reserved ...string) *ShortCodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	g := &ShortCodeGenerator{
		length:      length,
		maxAttempts: maxAttempts,
		exists:      exists,
		reserved:    make(map[string]bool, len(reserved)),
		draw:        RandomCode,
	}
	for _, word := range reserved {
		g.reserved[word] = true
	}
	return g
}

// Length returns the length of the codes the generator produces.
func (g *ShortCodeGenerator) Length() int { return g.length }

// RandomCode returns length symbols drawn uniformly from charset using crypto/rand.
func RandomCode(length int) (string, error) {
	code := make([]byte, length)
	n := big.NewInt(int64(len(charset)))
	for i := range code {
		num, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

// Generate returns a code that was not stored when it was checked.
// A collision discards the whole code and draws a new one.
func (g *ShortCodeGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		code, err := g.draw(g.length)
		if err != nil {
			return "", err
		}
		if g.reserved[code] {
			continue
		}
		taken, err := g.exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("database error checking short code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
		log.Printf("[SHORTENER] Short code '%s' already exists, retrying generation (attempt %d)", code, attempt)
	}
	return "", customerrors.ErrShortCodeGenerationFailed
}
