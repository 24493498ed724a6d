package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_tadoku_read/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestWord(courseID, learnerID uuid.UUID, term string) *model.DictionaryWord {
	return &model.DictionaryWord{
		WordID:       uuid.New(),
		CourseID:     courseID,
		LearnerID:    learnerID,
		Term:         term,
		Translation:  "家",
		LookupCount:  1,
		LastSeenAt:   time.Now(),
		MasteryLevel: model.MasteryLearning,
	}
}

func TestDictionaryRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormDictionaryRepository()

	learnerID := uuid.New()

	t.Run("正常系: 新しい単語を登録できる", func(t *testing.T) {
		courseID := uuid.New()

		err := repo.Create(ctx, db, newTestWord(courseID, learnerID, "casa"))

		assert.NoError(t, err)
	})

	t.Run("異常系: 同一コース・同一語の二重登録はErrConflict", func(t *testing.T) {
		courseID := uuid.New()

		err := repo.Create(ctx, db, newTestWord(courseID, learnerID, "perro"))
		assert.NoError(t, err)

		err = repo.Create(ctx, db, newTestWord(courseID, learnerID, "perro"))

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConflict))
	})

	t.Run("正常系: 別コースなら同じ語を登録できる", func(t *testing.T) {
		courseA := uuid.New()
		courseB := uuid.New()

		err := repo.Create(ctx, db, newTestWord(courseA, learnerID, "gato"))
		assert.NoError(t, err)

		err = repo.Create(ctx, db, newTestWord(courseB, learnerID, "gato"))

		assert.NoError(t, err)
	})
}

func TestLearnerRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormLearnerRepository()

	t.Run("異常系: メールアドレスの重複はErrConflict", func(t *testing.T) {
		email := uuid.NewString() + "@example.com"

		err := repo.Create(ctx, db, &model.Learner{
			LearnerID:    uuid.New(),
			Name:         "taro",
			Email:        email,
			PasswordHash: "hashed",
		})
		assert.NoError(t, err)

		err = repo.Create(ctx, db, &model.Learner{
			LearnerID:    uuid.New(),
			Name:         "jiro",
			Email:        email,
			PasswordHash: "hashed",
		})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConflict))
	})
}
