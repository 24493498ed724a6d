//go:generate mockery --name Client --output ./mocks --outpkg mocks --case=underscore
// internal/llm/client.go
package llm

import (
	"context"
	"strings"
)

// Client は外部の生成AI機能への最小限のインターフェースです。
// テキスト生成・構造化(JSON)生成・画像生成の3操作のみを公開します。
type Client interface {
	// GenerateText は system + user プロンプトからプレーンテキストを生成します
	GenerateText(ctx context.Context, system, user string) (string, error)

	// GenerateJSON はJSONオブジェクトとしてパース可能な出力を要求して生成します。
	// 戻り値はコードフェンス除去前の生文字列です (パースは呼び出し側の責務)。
	GenerateJSON(ctx context.Context, system, user string) (string, error)

	// GenerateImage はプロンプトから画像を生成し、PNGバイト列を返します
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// StripCodeFence は生成結果を囲むMarkdownコードフェンスを除去します。
// 生成APIはJSONを ```json ... ``` で包んで返すことがあるため、パース前に必ず通します。
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
