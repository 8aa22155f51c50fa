package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	log.WithContext(ctx).IntegrationError("sheets", "export", errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "integration_error", record["msg"])
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "sheets", record["service"])
	assert.Equal(t, "boom", record["error"])
}
