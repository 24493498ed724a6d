// internal/model/dictionary.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasteryLevel は単語の習得段階を表します
type MasteryLevel string

const (
	MasteryLearning  MasteryLevel = "LEARNING"  // 初見・学習中
	MasteryReviewing MasteryLevel = "REVIEWING" // 定着確認中
	MasteryMastered  MasteryLevel = "MASTERED"  // 習得済み
)

// 復習候補スコアリングのレベル重み
// LEARNING の単語を REVIEWING より優先して織り込む
const (
	WeightLearning  = 3
	WeightReviewing = 2
)

// DictionaryWord は学習者がクリック翻訳で登録した個人辞書の1語を表します
type DictionaryWord struct {
	WordID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	CourseID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_course_term,unique" json:"-"`
	LearnerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Term         string         `gorm:"not null;index:idx_course_term,unique" json:"term"` // 原形 (小文字化済み)
	Translation  string         `gorm:"not null" json:"translation"`                       // 母語への翻訳
	LookupCount  int            `gorm:"not null;default:1" json:"lookup_count"`
	LastSeenAt   time.Time      `gorm:"not null;index" json:"last_seen_at"`
	MasteryLevel MasteryLevel   `gorm:"type:varchar(20);not null;default:'LEARNING'" json:"mastery_level"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Appearances []WordAppearance `gorm:"foreignKey:WordID" json:"-"`
}

func (DictionaryWord) TableName() string {
	return "dictionary_words"
}

// WordAppearance は復習候補の単語が生成テキスト中に出現した記録です
type WordAppearance struct {
	AppearanceID uuid.UUID `gorm:"type:uuid;primaryKey" json:"appearance_id"`
	WordID       uuid.UUID `gorm:"type:uuid;not null;index:idx_word_text,unique" json:"word_id"`
	TextID       uuid.UUID `gorm:"type:uuid;not null;index:idx_word_text,unique" json:"text_id"`
	Clicked      bool      `gorm:"not null;default:false" json:"clicked"`
	CreatedAt    time.Time `json:"created_at"`
}

func (WordAppearance) TableName() string {
	return "word_appearances"
}

// クリック翻訳リクエストDTO
type LookupWordRequest struct {
	Term string `json:"term" validate:"required,min=1,max=100"`
	// 出現記録をクリック済みにするための任意のテキストID
	TextID *uuid.UUID `json:"text_id,omitempty"`
}

// 習得レベル更新リクエストDTO (REVIEWING→MASTERED の明示操作)
type UpdateMasteryRequest struct {
	MasteryLevel MasteryLevel `json:"mastery_level" validate:"required,oneof=LEARNING REVIEWING MASTERED"`
}
