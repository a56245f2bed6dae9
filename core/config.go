package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Env    string `yaml:"env" env:"APP_ENV" env-default:"local"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env:"BIND_IP" env-default:""`
		Port   string `yaml:"port" env:"PORT" env-default:"8000"`
	} `yaml:"listen"`
	ImageProvider string `yaml:"image_provider" env:"IMAGE_PROVIDER" env-default:"openai" env-description:"openai or gemini"`
	OpenAI        struct {
		ApiKey     string        `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
		BaseURL    string        `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
		ImageModel string        `yaml:"image_model" env:"OPENAI_IMAGE_MODEL" env-default:"gpt-image-1"`
		Timeout    time.Duration `yaml:"timeout" env:"OPENAI_TIMEOUT" env-default:"120s"`
	} `yaml:"openai"`
	Gemini struct {
		ApiKey     string `yaml:"api_key" env:"GEMINI_API_KEY" env-default:""`
		ImageModel string `yaml:"image_model" env:"GEMINI_IMAGE_MODEL" env-default:"imagen-3.0-generate-002"`
	} `yaml:"gemini"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:""`
	} `yaml:"telegram"`
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Listen.BindIP, c.Listen.Port)
}

// Load reads .env (without overriding variables already set in the process),
// then the YAML file at path when it exists, then the environment.
// The returned Config is never mutated afterwards.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	conf := &Config{}
	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("config: %s; %s", err, desc)
	}

	switch conf.ImageProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("config: unknown image provider %q", conf.ImageProvider)
	}
	return conf, nil
}

func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return conf
}
