package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(true, &buf)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %s", zerolog.GlobalLevel())
	}

	l := For("tests")
	l.Debug().Str("op", "probe").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "tests") {
		t.Errorf("Expected component in output, got %q", out)
	}
}

func TestInitInfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	Init(false, &buf)

	l := For("tests")
	l.Debug().Msg("hidden")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("Debug message should be filtered at info level, got %q", buf.String())
	}
}
