package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Set only required env var
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	defer os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Upload.MaxFileSize != 52428800 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 52428800)
	}
	if cfg.Parser.Delimiter != "þ" {
		t.Errorf("Parser.Delimiter = %q, want %q", cfg.Parser.Delimiter, "þ")
	}
	if cfg.Parser.HeaderMarker != "Native Link" {
		t.Errorf("Parser.HeaderMarker = %q, want %q", cfg.Parser.HeaderMarker, "Native Link")
	}
	if cfg.Parser.StrictWidth {
		t.Error("Parser.StrictWidth should default to false")
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("PARSER_STRICT_WIDTH", "true")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("PARSER_STRICT_WIDTH")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if !cfg.Parser.StrictWidth {
		t.Error("Parser.StrictWidth = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	// DB_URL works as a fallback for DATABASE_URL
	os.Setenv("DB_URL", "postgres://localhost/alttest")
	defer os.Unsetenv("DB_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.URL != "postgres://localhost/alttest" {
		t.Errorf("Database.URL = %q, want %q", cfg.Database.URL, "postgres://localhost/alttest")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DB_URL")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing DATABASE_URL")
	}
}

func TestLoad_Duration(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	os.Setenv("SERVER_READ_TIMEOUT", "45s")
	os.Setenv("UPLOAD_TIMEOUT", "1m30s")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("UPLOAD_TIMEOUT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Upload.Timeout != 90*time.Second {
		t.Errorf("Upload.Timeout = %v, want %v", cfg.Upload.Timeout, 90*time.Second)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	os.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("TRUSTED_PROXIES")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(want) {
		t.Fatalf("TrustedProxies = %v, want %v", cfg.Security.TrustedProxies, want)
	}
	for i, cidr := range want {
		if cfg.Security.TrustedProxies[i] != cidr {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], cidr)
		}
	}
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	os.Setenv("PARSER_DELIMITER", "þþ")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("PARSER_DELIMITER")
	}()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for multi-character delimiter")
	}
}

func TestDelimiterRune(t *testing.T) {
	p := ParserConfig{Delimiter: "þ"}
	if got := p.DelimiterRune(); got != 'þ' {
		t.Errorf("DelimiterRune() = %q, want %q", got, 'þ')
	}
}
