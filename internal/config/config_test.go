package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadReadsGeminiTable(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	path := writeConfig(t, `
[mainConfig]
appName = "research"
host = "127.0.0.1"
port = 9090

[logConfig]
level = "debug"

[gemini.api]
url = "https://example.test/models/m:generateContent?key="
key = "abc"
timeoutSeconds = 15
`)

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Gemini.API.URL != "https://example.test/models/m:generateContent?key=" || conf.Gemini.API.Key != "abc" {
		t.Fatalf("unexpected gemini config: %+v", conf.Gemini.API)
	}
	if conf.Addr() != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr: %s", conf.Addr())
	}
	if conf.GeminiTimeout() != 15*time.Second {
		t.Fatalf("unexpected timeout: %s", conf.GeminiTimeout())
	}
	if conf.LogConfig.Level != "debug" {
		t.Fatalf("unexpected log level: %s", conf.LogConfig.Level)
	}
}

func TestLoadFallsBackToEnv(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "https://env.test/?key=")
	t.Setenv("GEMINI_API_KEY", "from-env")

	path := writeConfig(t, `
[gemini.api]
url = "https://file.test/?key="
`)

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Gemini.API.URL != "https://file.test/?key=" {
		t.Fatalf("file value should win over env: %s", conf.Gemini.API.URL)
	}
	if conf.Gemini.API.Key != "from-env" {
		t.Fatalf("expected key from env, got %q", conf.Gemini.API.Key)
	}
	if conf.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected default addr: %s", conf.Addr())
	}
	if conf.GeminiTimeout() != 60*time.Second || conf.ShutdownTimeout() != 10*time.Second {
		t.Fatalf("unexpected default timeouts")
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "https://env.test/?key=")
	t.Setenv("GEMINI_API_KEY", "k")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Gemini.API.Key != "k" {
		t.Fatalf("unexpected key: %q", conf.Gemini.API.Key)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing url", "[gemini.api]\nkey = \"k\"\n", "gemini.api.url"},
		{"missing key", "[gemini.api]\nurl = \"u\"\n", "gemini.api.key"},
		{"bad port", "[mainConfig]\nport = 70000\n[gemini.api]\nurl = \"u\"\nkey = \"k\"\n", "port"},
		{"bad toml", "[gemini.api\n", "decode config"},
		{"cert without key", "[mainConfig]\nforceSSL = true\ncertFile = \"c.pem\"\n[gemini.api]\nurl = \"u\"\nkey = \"k\"\n", "set together"},
		{"cert without forceSSL", "[mainConfig]\ncertFile = \"c.pem\"\nkeyFile = \"k.pem\"\n[gemini.api]\nurl = \"u\"\nkey = \"k\"\n", "requires mainConfig.forceSSL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("RESEARCH_CONFIG", "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Fatalf("unexpected default path: %s", got)
	}

	t.Setenv("RESEARCH_CONFIG", "/etc/research.toml")
	if got := ResolvePath(""); got != "/etc/research.toml" {
		t.Fatalf("unexpected env path: %s", got)
	}
	if got := ResolvePath("custom.toml"); got != "custom.toml" {
		t.Fatalf("flag should win: %s", got)
	}
}

func TestTLSEnabled(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	conf, err := Load(writeConfig(t, `
[mainConfig]
forceSSL = true
certFile = "/etc/tls/cert.pem"
keyFile = "/etc/tls/key.pem"

[gemini.api]
url = "u"
key = "k"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conf.TLSEnabled() {
		t.Fatalf("expected tls listener with cert and key configured")
	}

	conf.MainConfig.CertFile, conf.MainConfig.KeyFile = "", ""
	if conf.TLSEnabled() {
		t.Fatalf("forceSSL without certificates means tls terminates at the proxy")
	}
}
