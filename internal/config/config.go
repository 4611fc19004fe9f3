package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type WhatsAppConfig struct {
	Token       string        `mapstructure:"token"`
	VerifyToken string        `mapstructure:"verify_token"`
	MessagesURL string        `mapstructure:"messages_url"`
	MediaURL    string        `mapstructure:"media_url"`
	SendDelay   time.Duration `mapstructure:"send_delay"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ServicesConfig holds the edge URLs of the external recommendation and
// try-on services, one per product category.
type ServicesConfig struct {
	HairColorTryOn string `mapstructure:"hair_color_try_on"`
	LipStickTryOn  string `mapstructure:"lip_stick_try_on"`
	LipLinerTryOn  string `mapstructure:"lip_liner_try_on"`
	HairStyleTryOn string `mapstructure:"hair_style_try_on"`
	FoundationRecs string `mapstructure:"foundation_recs"`
	SkinTintRecs   string `mapstructure:"skin_tint_recs"`
	ConcealerRecs  string `mapstructure:"concealer_recs"`
	SettingPowder  string `mapstructure:"setting_powder_recs"`
	ContourRecs    string `mapstructure:"contour_recs"`
	BronzerRecs    string `mapstructure:"bronzer_recs"`
	ShapeWearRecs  string `mapstructure:"shape_wear_recs"`
	NudeShoesRecs  string `mapstructure:"nude_shoes_recs"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	Delay       time.Duration `mapstructure:"delay"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// FallbackConfig selects what happens when no intent rule matches:
// "static" replies with a fixed message, "model" delegates to the LLM.
type FallbackConfig struct {
	Mode         string `mapstructure:"mode"`
	BrandPageURL string `mapstructure:"brand_page_url"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Services ServicesConfig `mapstructure:"services"`
	Retry    RetryConfig    `mapstructure:"retry"`
	Session  SessionConfig  `mapstructure:"session"`
	Fallback FallbackConfig `mapstructure:"fallback"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("whatsapp.send_delay", 5*time.Second)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.delay", 0)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("fallback.mode", "static")
	v.SetDefault("openai.model", "gpt-3.5-turbo")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Secrets come from the environment, never from the YAML file.
	if tok := os.Getenv("WHATSAPP_TOKEN"); tok != "" {
		cfg.WhatsApp.Token = tok
	}
	if tok := os.Getenv("APP_TOKEN"); tok != "" {
		cfg.WhatsApp.VerifyToken = tok
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	return &cfg, nil
}
