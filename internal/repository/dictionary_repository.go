//go:generate mockery --name DictionaryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DictionaryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.DictionaryWord) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.DictionaryWord, error)
	FindByTerm(ctx context.Context, db *gorm.DB, courseID uuid.UUID, term string) (*model.DictionaryWord, error)
	FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.DictionaryWord, error)
	// FindReinforceable は LEARNING / REVIEWING の単語を最終出現が古い順で返します。
	// MASTERED の単語は復習候補スコアリングの対象外のため含めません。
	FindReinforceable(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.DictionaryWord, error)
	Update(ctx context.Context, tx *gorm.DB, word *model.DictionaryWord) error
	Delete(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error
}

type gormDictionaryRepository struct{}

func NewGormDictionaryRepository() DictionaryRepository {
	return &gormDictionaryRepository{}
}

func (r *gormDictionaryRepository) Create(ctx context.Context, tx *gorm.DB, word *model.DictionaryWord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		// 同時クリックによる同一語の二重登録は Conflict に変換する
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create dictionary word",
				"error", result.Error,
				"course_id", word.CourseID.String(),
				"term", word.Term,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating dictionary word in DB",
			"error", result.Error,
			"course_id", word.CourseID.String(),
			"term", word.Term,
		)
		return fmt.Errorf("gormDictionaryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDictionaryRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.DictionaryWord, error) {
	logger := middleware.GetLogger(ctx)
	var word model.DictionaryWord
	result := db.WithContext(ctx).Where("learner_id = ? AND word_id = ?", learnerID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding dictionary word by ID in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormDictionaryRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormDictionaryRepository) FindByTerm(ctx context.Context, db *gorm.DB, courseID uuid.UUID, term string) (*model.DictionaryWord, error) {
	logger := middleware.GetLogger(ctx)
	var word model.DictionaryWord
	result := db.WithContext(ctx).Where("course_id = ? AND term = ?", courseID, term).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding dictionary word by term in DB",
			"error", result.Error,
			"course_id", courseID.String(),
			"term", term,
		)
		return nil, fmt.Errorf("gormDictionaryRepository.FindByTerm: %w", result.Error)
	}
	return &word, nil
}

func (r *gormDictionaryRepository) FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.DictionaryWord, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.DictionaryWord
	result := db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&words)
	if result.Error != nil {
		logger.Error("Error listing dictionary words in DB", "error", result.Error, "course_id", courseID.String())
		return nil, fmt.Errorf("gormDictionaryRepository.FindByCourse: %w", result.Error)
	}
	return words, nil
}

func (r *gormDictionaryRepository) FindReinforceable(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.DictionaryWord, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.DictionaryWord
	// 最終出現が古い順に取得する。スコア同点の場合はこの順序がそのまま優先順位になる。
	result := db.WithContext(ctx).
		Where("course_id = ? AND mastery_level IN ?", courseID,
			[]model.MasteryLevel{model.MasteryLearning, model.MasteryReviewing}).
		Order("last_seen_at ASC").
		Find(&words)
	if result.Error != nil {
		logger.Error("Error finding reinforceable words in DB", "error", result.Error, "course_id", courseID.String())
		return nil, fmt.Errorf("gormDictionaryRepository.FindReinforceable: %w", result.Error)
	}
	return words, nil
}

func (r *gormDictionaryRepository) Update(ctx context.Context, tx *gorm.DB, word *model.DictionaryWord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(word)
	if result.Error != nil {
		logger.Error("Error updating dictionary word in DB", "error", result.Error, "word_id", word.WordID.String())
		return fmt.Errorf("gormDictionaryRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormDictionaryRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("learner_id = ? AND word_id = ?", learnerID, wordID).Delete(&model.DictionaryWord{})
	if result.Error != nil {
		logger.Error("Error deleting dictionary word in DB", "error", result.Error, "word_id", wordID.String())
		return fmt.Errorf("gormDictionaryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
