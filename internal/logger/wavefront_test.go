package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/wavefront/pkg/wavefront"
)

func TestWavefrontAdapterLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWavefront(zap.New(core))

	log.Log(wavefront.LevelDebug, "debug")
	log.Log(wavefront.LevelInfo, "info")
	log.Log(wavefront.LevelWarning, "warning")
	log.Log(wavefront.LevelError, "error")
	log.Log(wavefront.LevelCritical, "critical")

	expected := []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
		zapcore.ErrorLevel,
	}

	entries := logs.All()
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(entries))
	}
	for i, entry := range entries {
		if entry.Level != expected[i] {
			t.Errorf("entry %d (%s): expected level %v, got %v", i, entry.Message, expected[i], entry.Level)
		}
	}

	critical := entries[4].ContextMap()
	if critical["critical"] != true {
		t.Errorf("expected critical=true field, got %v", critical)
	}
	if _, ok := entries[3].ContextMap()["critical"]; ok {
		t.Error("plain errors must not carry the critical field")
	}
}

func TestWavefrontAdapterWithParser(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	saved := Log
	Log = zap.New(core)
	defer func() { Log = saved }()

	_, err := wavefront.ParseObjReader(
		strings.NewReader("mtllib nowhere.mtl\nv 0 0 0\nf 1 1 1\n"),
		"scene.obj",
		wavefront.WithLogger(Wavefront(zap.String("file", "scene.obj"))),
	)
	if err != nil {
		t.Fatalf("ParseObjReader failed: %v", err)
	}

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].ContextMap()["file"] != "scene.obj" {
		t.Errorf("expected file field on adapter output, got %v", warnings[0].ContextMap())
	}
}

func TestNewWavefrontNil(t *testing.T) {
	// A nil zap logger falls back to a no-op
	NewWavefront(nil).Log(wavefront.LevelError, "dropped")
}
