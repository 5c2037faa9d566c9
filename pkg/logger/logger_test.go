package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetBeforeInitPanics(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from Get before Init")
		}
	}()
	Get()
}

func TestGetReturnsInitializedInstance(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf})

	log := Get()
	log.Info().Msg("hello from get")

	if !strings.Contains(buf.String(), "hello from get") {
		t.Errorf("log line not written through singleton: %q", buf.String())
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	log := Init(Options{Level: "info", Output: &second})

	log.Info().Msg("still the first writer")

	if !strings.Contains(first.String(), "still the first writer") {
		t.Errorf("second Init replaced the instance: first=%q second=%q", first.String(), second.String())
	}
	if second.Len() != 0 {
		t.Errorf("second output written to: %q", second.String())
	}
}

func TestResetRearmsInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	Reset()
	Init(Options{Level: "info", Output: &second})

	log := Get()
	log.Info().Msg("after reset")

	if !strings.Contains(second.String(), "after reset") {
		t.Errorf("rebuilt instance not used: %q", second.String())
	}
	if strings.Contains(first.String(), "after reset") {
		t.Errorf("stale instance still wired: %q", first.String())
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "shouting", Output: &buf})

	log := Get()
	log.Debug().Msg("suppressed")
	log.Info().Msg("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("debug line emitted at fallback level: %q", out)
	}
	if !strings.Contains(out, "emitted") {
		t.Errorf("info line missing at fallback level: %q", out)
	}
}
