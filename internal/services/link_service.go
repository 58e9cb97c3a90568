// Package services contains the business logic of the URL and to-do services.
package services

import (
	"context"
	"errors"
	"fmt"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/models"
	"github.com/axellelanca/minicrud/internal/repository"
)

// LinkService provides the shorten / resolve / stats operations.
type LinkService struct {
	linkRepo  repository.ShortLinkRepository
	generator *ShortCodeGenerator
}

// NewLinkService creates a LinkService whose codes are checked against linkRepo.
func NewLinkService(linkRepo repository.ShortLinkRepository, codeLength, maxAttempts int) *LinkService {
	return &LinkService{
		linkRepo:  linkRepo,
		generator: NewShortCodeGenerator(codeLength, maxAttempts, linkRepo.Exists, ReservedShortIDs...),
	}
}

// Shorten stores fullURL under a freshly generated short code with zero clicks.
// fullURL is stored as given.
func (s *LinkService) Shorten(ctx context.Context, fullURL string) (*models.ShortLink, error) {
	for {
		code, err := s.generator.Generate(ctx)
		if err != nil {
			return nil, err
		}

		link := &models.ShortLink{ShortID: code, FullURL: fullURL, Clicks: 0}
		err = s.linkRepo.Create(ctx, link)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, customerrors.ErrShortIDTaken) {
			return nil, fmt.Errorf("failed to create link: %w", err)
		}
		// Another writer took the code after the existence check.
	}
}

// Resolve returns the target of shortID and counts one click.
// The click is recorded before the caller redirects, whatever the outcome of the redirect.
func (s *LinkService) Resolve(ctx context.Context, shortID string) (string, error) {
	link, err := s.linkRepo.FindByShortID(ctx, shortID)
	if err != nil {
		return "", err
	}
	if err := s.linkRepo.IncrementClicks(ctx, shortID); err != nil {
		return "", err
	}
	return link.FullURL, nil
}

// Stats returns the stored link without modifying it.
func (s *LinkService) Stats(ctx context.Context, shortID string) (*models.ShortLink, error) {
	return s.linkRepo.FindByShortID(ctx, shortID)
}

// Links returns every stored link.
func (s *LinkService) Links(ctx context.Context) ([]models.ShortLink, error) {
	return s.linkRepo.All(ctx)
}
