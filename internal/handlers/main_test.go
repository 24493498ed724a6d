package handlers_test

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// ハンドラはコンテキスト経由でロガーを取得するため、デフォルトを破棄先に差し替える
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}
