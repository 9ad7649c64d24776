package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("span", "2025-06").Msg("located check register")

	out := buf.String()
	if out == "" {
		t.Fatal("Expected log output, got nothing")
	}
	if !strings.Contains(out, "located check register") {
		t.Errorf("Expected the message in the output, got %q", out)
	}
	if !strings.Contains(out, "2025-06") {
		t.Errorf("Expected the span field in the output, got %q", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), NewWithWriter(&buf))

	log := FromContext(ctx)
	log.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("Expected the context logger used, got %q", buf.String())
	}
}

func TestFromContextDefaultsQuiet(t *testing.T) {
	// Without a logger on the context, library code must not write
	// anywhere.
	log := FromContext(context.Background())
	log.Info().Msg("should vanish")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := WithFields(NewWithWriter(&buf), map[string]interface{}{
		"source": "packet.pdf",
		"pages":  3,
	})

	log.Info().Msg("archived")

	out := buf.String()
	if !strings.Contains(out, "packet.pdf") || !strings.Contains(out, "\"pages\":3") {
		t.Errorf("Expected both fields in the output, got %q", out)
	}
}
