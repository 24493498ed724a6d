//go:generate mockery --name AppearanceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppearanceRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, appearances []*model.WordAppearance) error
	FindByText(ctx context.Context, db *gorm.DB, textID uuid.UUID) ([]*model.WordAppearance, error)
	// MarkClicked は指定テキスト内の単語の出現記録をクリック済みにします
	MarkClicked(ctx context.Context, tx *gorm.DB, wordID, textID uuid.UUID) error
}

type gormAppearanceRepository struct{}

func NewGormAppearanceRepository() AppearanceRepository {
	return &gormAppearanceRepository{}
}

func (r *gormAppearanceRepository) CreateBatch(ctx context.Context, tx *gorm.DB, appearances []*model.WordAppearance) error {
	if len(appearances) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(appearances)
	if result.Error != nil {
		logger.Error("Error creating word appearances in DB",
			"error", result.Error,
			"count", len(appearances),
		)
		return fmt.Errorf("gormAppearanceRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormAppearanceRepository) FindByText(ctx context.Context, db *gorm.DB, textID uuid.UUID) ([]*model.WordAppearance, error) {
	logger := middleware.GetLogger(ctx)
	var appearances []*model.WordAppearance
	result := db.WithContext(ctx).Where("text_id = ?", textID).Find(&appearances)
	if result.Error != nil {
		logger.Error("Error finding word appearances in DB", "error", result.Error, "text_id", textID.String())
		return nil, fmt.Errorf("gormAppearanceRepository.FindByText: %w", result.Error)
	}
	return appearances, nil
}

func (r *gormAppearanceRepository) MarkClicked(ctx context.Context, tx *gorm.DB, wordID, textID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.WordAppearance{}).
		Where("word_id = ? AND text_id = ?", wordID, textID).
		Update("clicked", true)
	if result.Error != nil {
		logger.Error("Error marking word appearance as clicked in DB",
			"error", result.Error,
			"word_id", wordID.String(),
			"text_id", textID.String(),
		)
		return fmt.Errorf("gormAppearanceRepository.MarkClicked: %w", result.Error)
	}
	// 出現記録がないテキストでのクリックは正常系 (復習候補でなかった単語)
	return nil
}
