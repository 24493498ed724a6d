// internal/model/course.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course は学習者が学ぶ言語とレベルの組を表します
type Course struct {
	CourseID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"course_id"`
	LearnerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Language  string         `gorm:"not null" json:"language"` // 学習対象言語 (例: "スペイン語")
	Level     string         `gorm:"not null" json:"level"`    // CEFRレベルラベル (例: "A2")
	Interests string         `gorm:"type:text" json:"-"`       // 興味リスト (JSON配列のシリアライズ)
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Words []DictionaryWord `gorm:"foreignKey:CourseID" json:"-"`
	Texts []GeneratedText  `gorm:"foreignKey:CourseID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// InterestList は Interests カラムをデコードして返します
func (c *Course) InterestList() []string {
	if c.Interests == "" {
		return nil
	}
	var interests []string
	if err := json.Unmarshal([]byte(c.Interests), &interests); err != nil {
		return nil
	}
	return interests
}

// SetInterestList は興味リストをシリアライズして格納します
func (c *Course) SetInterestList(interests []string) {
	if len(interests) == 0 {
		c.Interests = ""
		return
	}
	b, err := json.Marshal(interests)
	if err != nil {
		c.Interests = ""
		return
	}
	c.Interests = string(b)
}

// コース作成リクエストDTO
type CreateCourseRequest struct {
	Language  string   `json:"language" validate:"required,min=1,max=50"`
	Level     string   `json:"level" validate:"required,min=1,max=10"`
	Interests []string `json:"interests" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// CourseResponse はクライアントに返すコース情報
type CourseResponse struct {
	CourseID  uuid.UUID `json:"course_id"`
	Language  string    `json:"language"`
	Level     string    `json:"level"`
	Interests []string  `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCourseResponse(c *Course) *CourseResponse {
	return &CourseResponse{
		CourseID:  c.CourseID,
		Language:  c.Language,
		Level:     c.Level,
		Interests: c.InterestList(),
		CreatedAt: c.CreatedAt,
	}
}
