// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "Tadoku"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultReinforcementLimit = 10
	DefaultTextWordCount      = 400
	DefaultGuestPerHour       = 5
	DefaultAccessTokenTTL     = 24 * time.Hour
)

// OpenAI関連のデフォルト値
const (
	DefaultOpenAIBaseURL    = "https://api.openai.com"
	DefaultOpenAIModel      = "gpt-4o-mini"
	DefaultOpenAIImageModel = "dall-e-3"
	DefaultOpenAITimeout    = 120 * time.Second
)
