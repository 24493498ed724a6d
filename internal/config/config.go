// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" or "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		Name        string `mapstructure:"name"`
		FrontendURL string `mapstructure:"frontend_url"`
		// 生成テキストに織り込む復習候補単語の上限
		ReinforcementLimit int `mapstructure:"reinforcement_limit"`
		// 生成テキストのおおよその語数
		TextWordCount int `mapstructure:"text_word_count"`
	} `mapstructure:"app"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	OpenAI struct {
		APIKey     string        `mapstructure:"api_key"`
		BaseURL    string        `mapstructure:"base_url"`
		Model      string        `mapstructure:"model"`
		ImageModel string        `mapstructure:"image_model"`
		Timeout    time.Duration `mapstructure:"timeout"`
	} `mapstructure:"openai"`
	RateLimit struct {
		// ゲスト生成APIの1時間あたりの許可リクエスト数 (IPごと)
		GuestPerHour int `mapstructure:"guest_per_hour"`
	} `mapstructure:"rate_limit"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log", "smtp", "ses"
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書きを許可する (例: APP_OPENAI_API_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.App.ReinforcementLimit <= 0 {
		log.Println("Reinforcement limit not set or invalid, using default '10'")
		Cfg.App.ReinforcementLimit = DefaultReinforcementLimit
	}
	if Cfg.App.TextWordCount <= 0 {
		Cfg.App.TextWordCount = DefaultTextWordCount
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if Cfg.OpenAI.BaseURL == "" {
		Cfg.OpenAI.BaseURL = DefaultOpenAIBaseURL
	}
	if Cfg.OpenAI.Model == "" {
		Cfg.OpenAI.Model = DefaultOpenAIModel
	}
	if Cfg.OpenAI.ImageModel == "" {
		Cfg.OpenAI.ImageModel = DefaultOpenAIImageModel
	}
	if Cfg.OpenAI.Timeout <= 0 {
		Cfg.OpenAI.Timeout = DefaultOpenAITimeout
	}
	if Cfg.RateLimit.GuestPerHour <= 0 {
		log.Println("Guest rate limit not set or invalid, using default '5'")
		Cfg.RateLimit.GuestPerHour = DefaultGuestPerHour
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OpenAI API key is not set. Text generation will fail.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set. Use APP_JWT_SECRET_KEY in production.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Reinforcement Limit: %d", Cfg.App.ReinforcementLimit)
	log.Printf("Guest Rate Limit: %d/hour", Cfg.RateLimit.GuestPerHour)

	return nil
}
