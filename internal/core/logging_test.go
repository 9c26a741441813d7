package core

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// loggingContext returns a context whose logger writes JSON into buf.
func loggingContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return logger.WithContext(t.Context()), &buf
}

// warnings decodes buf and keeps the warn level entries.
func warnings(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		entry := map[string]any{}
		require.NoError(t, decoder.Decode(&entry))
		if entry["level"] == "warn" {
			entries = append(entries, entry)
		}
	}
	return entries
}
