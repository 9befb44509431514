package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("DISCORD_BOT_TOKEN", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("ENVIRONMENT", "test")
	defer func() {
		os.Unsetenv("DISCORD_BOT_TOKEN")
		os.Unsetenv("PORT")
		os.Unsetenv("ENVIRONMENT")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("ENVIRONMENT", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("ENVIRONMENT", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("ENVIRONMENT")
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	// Clear all environment variables
	os.Unsetenv("DISCORD_BOT_TOKEN")
	os.Unsetenv("DEV_GUILD_ID")
	os.Unsetenv("MONGODB_CONNECTION_STRING")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("LANGUAGES_DIR")
	os.Unsetenv("MQTT_HOST")
	os.Unsetenv("MQTT_PORT")
	os.Unsetenv("PORT")
	os.Unsetenv("ENVIRONMENT")

	resetForTesting()
	config, _ := Load()

	// Check default values
	if config.DBName != "discordbot" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "discordbot")
	}

	if config.LanguagesDir != "Languages" {
		t.Errorf("LanguagesDir default = %v, want %v", config.LanguagesDir, "Languages")
	}

	if config.MQTTPort != "1883" {
		t.Errorf("MQTTPort default = %v, want %v", config.MQTTPort, "1883")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}

	if config.MQTTEnabled() {
		t.Error("MQTTEnabled() should be false when MQTT_HOST is unset")
	}
}
