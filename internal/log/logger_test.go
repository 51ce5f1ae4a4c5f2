package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfigureLevel(t *testing.T) {
	t.Setenv(EnvLevel, "")

	var buf bytes.Buffer
	Configure(Config{Output: &buf, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("config")
	l.Debug().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "component=config") {
		t.Errorf("Expected warning with component field, got %q", out)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")

	var buf bytes.Buffer
	Configure(Config{Output: &buf, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Debug().Str("path", ".commitlintrc.json").Msg("loading")

	if !strings.Contains(buf.String(), "loading") {
		t.Errorf("Expected debug message, got %q", buf.String())
	}
}
