package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, maskFields []string) *slog.Logger {
	inner := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(&contextHandler{
		Handler:     &maskHandler{handler: inner, maskKeys: normalizeMaskKeys(maskFields)},
		serviceName: "verimail-test",
	})
}

func TestMaskHandlerMasksTopLevelKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, []string{"password", "otp"})

	logger.Info("register request", "email", "a@x.com", "password", "testpassword")

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "a@x.com", out["email"])
	assert.Equal(t, "***", out["password"])
	assert.Equal(t, "verimail-test", out["service"])
}

func TestMaskHandlerMasksJSONBodies(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, []string{"password"})

	body := `{"email":"a@x.com","password":"testpassword"}`
	logger.Info("incoming request", "body", body)

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	var masked map[string]any
	require.NoError(t, json.Unmarshal([]byte(out["body"].(string)), &masked))
	assert.Equal(t, "***", masked["password"])
	assert.Equal(t, "a@x.com", masked["email"])
}

func TestContextHandlerAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, nil)

	ctx := SetCorrelationID(context.Background(), "cid-123")
	logger.InfoContext(ctx, "hello")

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "cid-123", out["_cID"])
}

func TestGetCorrelationIDMissing(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
