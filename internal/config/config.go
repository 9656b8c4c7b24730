package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath 默认配置文件路径，可通过 -config 或 RESEARCH_CONFIG 覆盖
const DefaultPath = "configs/config_local.toml"

type MainConfig struct {
	AppName                string `toml:"appName"`
	Host                   string `toml:"host"`
	Port                   int    `toml:"port"`
	ForceSSL               bool   `toml:"forceSSL"`
	CertFile               string `toml:"certFile"`
	KeyFile                string `toml:"keyFile"`
	ShutdownTimeoutSeconds int    `toml:"shutdownTimeoutSeconds"`
}

type LogConfig struct {
	LogPath    string `toml:"logPath"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"maxSizeMB"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAgeDays int    `toml:"maxAgeDays"`
}

// GeminiAPIConfig 对应 [gemini.api]，即 gemini.api.url / gemini.api.key
type GeminiAPIConfig struct {
	URL            string `toml:"url"`
	Key            string `toml:"key"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
}

type GeminiConfig struct {
	API GeminiAPIConfig `toml:"api"`
}

type Config struct {
	MainConfig `toml:"mainConfig"`
	LogConfig  `toml:"logConfig"`
	Gemini     GeminiConfig `toml:"gemini"`
}

// Addr 监听地址
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.MainConfig.Host, c.MainConfig.Port)
}

// GeminiTimeout 外部模型调用超时，未配置时为 60s
func (c *Config) GeminiTimeout() time.Duration {
	if c.Gemini.API.TimeoutSeconds > 0 {
		return time.Duration(c.Gemini.API.TimeoutSeconds) * time.Second
	}
	return 60 * time.Second
}

// TLSEnabled forceSSL 且配置了证书时由本进程直接监听 HTTPS；
// 只开 forceSSL 不配证书表示 TLS 在前置代理终止
func (c *Config) TLSEnabled() bool {
	return c.MainConfig.ForceSSL && c.MainConfig.CertFile != "" && c.MainConfig.KeyFile != ""
}

// ShutdownTimeout 优雅关闭的最长等待时间，未配置时为 10s
func (c *Config) ShutdownTimeout() time.Duration {
	if c.MainConfig.ShutdownTimeoutSeconds > 0 {
		return time.Duration(c.MainConfig.ShutdownTimeoutSeconds) * time.Second
	}
	return 10 * time.Second
}

// ResolvePath 依次取命令行参数、RESEARCH_CONFIG 环境变量、默认路径
func ResolvePath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("RESEARCH_CONFIG")); p != "" {
		return p
	}
	return DefaultPath
}

// Load 读取并校验配置。启动时调用一次，返回值之后只读。
// 配置文件不存在时退回到默认值 + 环境变量。
func Load(path string) (*Config, error) {
	conf := defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, conf); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	applyEnv(conf)

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func defaults() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "ResearchAssistant",
			Host:    "0.0.0.0",
			Port:    8080,
		},
		LogConfig: LogConfig{
			Level: "info",
		},
	}
}

// applyEnv 配置文件里留空的 gemini 字段从环境变量补齐
func applyEnv(conf *Config) {
	if strings.TrimSpace(conf.Gemini.API.URL) == "" {
		conf.Gemini.API.URL = strings.TrimSpace(os.Getenv("GEMINI_API_URL"))
	}
	if strings.TrimSpace(conf.Gemini.API.Key) == "" {
		conf.Gemini.API.Key = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Gemini.API.URL) == "" {
		return fmt.Errorf("gemini.api.url is required")
	}
	if strings.TrimSpace(c.Gemini.API.Key) == "" {
		return fmt.Errorf("gemini.api.key is required")
	}
	if (c.MainConfig.CertFile == "") != (c.MainConfig.KeyFile == "") {
		return fmt.Errorf("mainConfig.certFile and mainConfig.keyFile must be set together")
	}
	if c.MainConfig.CertFile != "" && !c.MainConfig.ForceSSL {
		return fmt.Errorf("mainConfig.certFile requires mainConfig.forceSSL")
	}
	if c.MainConfig.Port <= 0 || c.MainConfig.Port > 65535 {
		return fmt.Errorf("mainConfig.port out of range: %d", c.MainConfig.Port)
	}
	return nil
}
