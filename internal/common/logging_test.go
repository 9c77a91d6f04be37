package common

import "testing"

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	logger := NewLogger("info")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNewLogger_FluentAPI(t *testing.T) {
	// Must not panic — proves the fluent chain works with arbor
	logger := NewLogger("error")
	logger.Info().Str("key", "value").Msg("test message")
	logger.Warn().Int("count", 42).Msg("warning")
	logger.Error().Err(nil).Msg("error message")
	logger.Debug().Bool("ok", true).Msg("debug")
}

func TestNewLoggerFromConfig_ConsoleOnly(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{
		Level:   "error",
		Outputs: []string{"console"},
	})
	if logger == nil {
		t.Fatal("NewLoggerFromConfig returned nil")
	}
	logger.Error().Str("key", "value").Msg("console only")
}

func TestNewSilentLogger_DiscardsOutput(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("NewSilentLogger returned nil")
	}
	// Must not panic
	logger.Info().Str("key", "value").Msg("should be discarded")
	logger.Error().Err(nil).Msg("should be discarded")
}

func TestWithCorrelationId_ReturnsNewLogger(t *testing.T) {
	logger := NewSilentLogger()
	withID := logger.WithCorrelationId("abc-123")
	if withID == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	if withID == logger {
		t.Error("Expected a new Logger instance")
	}
	withID.Info().Msg("correlated message")
}
