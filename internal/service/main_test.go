// internal/service/main_test.go
package service

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"go_5_tadoku_read/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	// サービスはコンテキスト経由でロガーを取得するため、デフォルトを破棄先に差し替える
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

// newTestDB はトランザクションを実際に実行するためのインメモリDBを返します
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}

	err = db.AutoMigrate(
		&model.Learner{},
		&model.Course{},
		&model.DictionaryWord{},
		&model.GeneratedText{},
		&model.WordAppearance{},
		&model.Exercise{},
		&model.ExerciseProgress{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}
