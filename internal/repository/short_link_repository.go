package repository

import (
	"context"
	"errors"
	"fmt"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShortLinkRepository defines data access for the urls table.
type ShortLinkRepository interface {
	Exists(ctx context.Context, shortID string) (bool, error)
	Create(ctx context.Context, link *models.ShortLink) error
	FindByShortID(ctx context.Context, shortID string) (*models.ShortLink, error)
	IncrementClicks(ctx context.Context, shortID string) error
	All(ctx context.Context) ([]models.ShortLink, error)
}

// GormShortLinkRepository implements ShortLinkRepository with GORM.
type GormShortLinkRepository struct {
	db *gorm.DB
}

// NewShortLinkRepository creates a repository over db.
func NewShortLinkRepository(db *gorm.DB) *GormShortLinkRepository {
	return &GormShortLinkRepository{db: db}
}

// Exists reports whether shortID is already stored.
func (r *GormShortLinkRepository) Exists(ctx context.Context, shortID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ShortLink{}).Where("short_id = ?", shortID).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check short id %q: %w", shortID, err)
	}
	return count > 0, nil
}

// Create inserts link only if its short id is free. An occupied short id
// leaves the table untouched and yields ErrShortIDTaken.
func (r *GormShortLinkRepository) Create(ctx context.Context, link *models.ShortLink) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(link)
	if res.Error != nil {
		return fmt.Errorf("failed to create short link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return customerrors.ErrShortIDTaken
	}
	return nil
}

// FindByShortID returns the link stored under shortID or ErrNotFound.
func (r *GormShortLinkRepository) FindByShortID(ctx context.Context, shortID string) (*models.ShortLink, error) {
	var link models.ShortLink
	if err := r.db.WithContext(ctx).Where("short_id = ?", shortID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get short link %q: %w", shortID, err)
	}
	return &link, nil
}

// IncrementClicks adds exactly one click in a single UPDATE statement.
func (r *GormShortLinkRepository) IncrementClicks(ctx context.Context, shortID string) error {
	res := r.db.WithContext(ctx).Model(&models.ShortLink{}).
		Where("short_id = ?", shortID).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment clicks for %q: %w", shortID, res.Error)
	}
	if res.RowsAffected == 0 {
		return customerrors.ErrNotFound
	}
	return nil
}

// All returns every stored link.
func (r *GormShortLinkRepository) All(ctx context.Context) ([]models.ShortLink, error) {
	var links []models.ShortLink
	if err := r.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve all short links: %w", err)
	}
	return links, nil
}
