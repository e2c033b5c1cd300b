package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the bot needs at startup. Values come from an
// optional YAML file with environment variables taking precedence, so
// nothing reads ambient environment at call sites deeper down.
type Config struct {
	Discord struct {
		Token string `yaml:"token"`
	} `yaml:"discord"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Quiz struct {
		TimeLimit       string `yaml:"time_limit"`
		LeaderboardSize int    `yaml:"leaderboard_size"`
		TopicHint       string `yaml:"topic_hint"`
	} `yaml:"quiz"`
}

// Load reads YAML config from path and applies environment overrides.
// An empty path skips the file and uses environment and defaults only.
func Load(path string) (Config, error) {
	cfg := Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		c.Discord.Token = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
	if v := os.Getenv("QUIZ_TIME_LIMIT"); v != "" {
		c.Quiz.TimeLimit = v
	}
	if v := os.Getenv("QUIZ_TOPIC_HINT"); v != "" {
		c.Quiz.TopicHint = v
	}
}

// RedisAddr returns the configured Redis address or the local default.
func (c *Config) RedisAddr() string {
	if c.Redis.Addr == "" {
		return "localhost:6379"
	}
	return c.Redis.Addr
}

// TimeLimit parses the round duration or returns the fallback if unset or
// invalid.
func (c *Config) TimeLimit(fallback time.Duration) time.Duration {
	if c.Quiz.TimeLimit == "" {
		return fallback
	}
	if d, err := time.ParseDuration(c.Quiz.TimeLimit); err == nil && d > 0 {
		return d
	}
	return fallback
}
