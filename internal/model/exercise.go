// internal/model/exercise.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExerciseType は読解問題の種別を表します
type ExerciseType string

const (
	ExerciseMultipleChoice ExerciseType = "MULTIPLE_CHOICE"
	ExerciseFillBlank      ExerciseType = "FILL_BLANK"
	ExerciseTrueFalse      ExerciseType = "TRUE_FALSE"
	ExerciseTranslation    ExerciseType = "TRANSLATION"
	ExerciseSentenceOrder  ExerciseType = "SENTENCE_ORDER"
)

// 1テキストあたりの問題数と種別構成 (2/2/1/2/1 の固定配分)
const ExerciseBatchSize = 8

// Exercise は生成テキストに紐づく読解問題1問を表します
type Exercise struct {
	ExerciseID    uuid.UUID    `gorm:"type:uuid;primaryKey" json:"exercise_id"`
	TextID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	Type          ExerciseType `gorm:"type:varchar(20);not null" json:"type"`
	Question      string       `gorm:"type:text;not null" json:"question"`
	Options       string       `gorm:"type:text" json:"-"` // 選択肢 (JSON配列のシリアライズ、種別により空)
	CorrectAnswer string       `gorm:"type:text;not null" json:"-"`
	Explanation   string       `gorm:"type:text" json:"-"`
	OrderIndex    int          `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// OptionList は Options カラムをデコードして返します
func (e *Exercise) OptionList() []string {
	if e.Options == "" {
		return nil
	}
	var options []string
	if err := json.Unmarshal([]byte(e.Options), &options); err != nil {
		return nil
	}
	return options
}

func (e *Exercise) SetOptionList(options []string) {
	if len(options) == 0 {
		e.Options = ""
		return
	}
	b, err := json.Marshal(options)
	if err != nil {
		e.Options = ""
		return
	}
	e.Options = string(b)
}

// ExerciseProgress は学習者ごとの解答記録です。提出のたびにUpsertされます。
type ExerciseProgress struct {
	ProgressID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LearnerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_learner_exercise,unique"`
	ExerciseID   uuid.UUID `gorm:"type:uuid;not null;index:idx_learner_exercise,unique"`
	Completed    bool      `gorm:"not null;default:false"`
	IsCorrect    bool      `gorm:"not null;default:false"`
	Answer       string    `gorm:"type:text"`
	AttemptCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ExerciseProgress) TableName() string {
	return "exercise_progress"
}

// ExerciseResponse は出題用DTO (正解・解説を含めない)
type ExerciseResponse struct {
	ExerciseID uuid.UUID    `json:"exercise_id"`
	Type       ExerciseType `json:"type"`
	Question   string       `json:"question"`
	Options    []string     `json:"options,omitempty"`
	OrderIndex int          `json:"order_index"`
}

func NewExerciseResponse(e *Exercise) *ExerciseResponse {
	return &ExerciseResponse{
		ExerciseID: e.ExerciseID,
		Type:       e.Type,
		Question:   e.Question,
		Options:    e.OptionList(),
		OrderIndex: e.OrderIndex,
	}
}

// 解答提出リクエストDTO
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// SubmitAnswerResponse は採点結果のレスポンス
type SubmitAnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	AttemptCount  int    `json:"attempt_count"`
}
