package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("TELEGRAM_BOT_API_TOKEN", "test_bot_token")
	os.Setenv("DB_PASSWORD", "test_password")
	os.Setenv("LIST_OF_ADMINS", "123456789, 987654321")
	os.Setenv("LOCAL_TIMEZONE", "Asia/Singapore")
	defer func() {
		os.Unsetenv("TELEGRAM_BOT_API_TOKEN")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("LIST_OF_ADMINS")
		os.Unsetenv("LOCAL_TIMEZONE")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BotToken != "test_bot_token" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "test_bot_token")
	}

	if len(cfg.Admins) != 2 {
		t.Fatalf("len(Admins) = %d, want 2", len(cfg.Admins))
	}

	if cfg.Admins[0] != 123456789 || cfg.Admins[1] != 987654321 {
		t.Errorf("Admins = %v, want [123456789 987654321]", cfg.Admins)
	}

	if cfg.LocalTimezone != "Asia/Singapore" {
		t.Errorf("LocalTimezone = %q, want %q", cfg.LocalTimezone, "Asia/Singapore")
	}

	if cfg.APITimeoutSeconds != 3 {
		t.Errorf("APITimeoutSeconds = %d, want default 3", cfg.APITimeoutSeconds)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing TELEGRAM_BOT_API_TOKEN",
			envVars: map[string]string{
				"DB_PASSWORD":    "password",
				"LIST_OF_ADMINS": "123456789",
			},
		},
		{
			name: "Missing DB_PASSWORD",
			envVars: map[string]string{
				"TELEGRAM_BOT_API_TOKEN": "token",
				"LIST_OF_ADMINS":         "123456789",
			},
		},
		{
			name: "Missing LIST_OF_ADMINS",
			envVars: map[string]string{
				"TELEGRAM_BOT_API_TOKEN": "token",
				"DB_PASSWORD":            "password",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Error("LoadConfig() expected error for missing required field, got nil")
			}
		})
	}
}

func TestLoadConfig_InvalidAdminList(t *testing.T) {
	os.Clearenv()
	os.Setenv("TELEGRAM_BOT_API_TOKEN", "token")
	os.Setenv("DB_PASSWORD", "password")
	os.Setenv("LIST_OF_ADMINS", "123,abc")

	_, err := LoadConfig()
	if err == nil {
		t.Error("LoadConfig() expected error for non-numeric admin id, got nil")
	}
}

func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := &Config{
		BotToken:      "token",
		DBPassword:    "password",
		Admins:        []int64{1},
		LocalTimezone: "Not/AZone",
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for bad timezone, got nil")
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{Admins: []int64{111, 222}}

	if !cfg.IsAdmin(111) {
		t.Error("IsAdmin(111) = false, want true")
	}
	if cfg.IsAdmin(333) {
		t.Error("IsAdmin(333) = true, want false")
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	dsn := cfg.GetDSN()

	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}
