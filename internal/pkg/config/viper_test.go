package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: verimail
  debug: true
server:
  port: 8080
  read_timeout_seconds: 15
  cors: "http://localhost:3000, http://localhost:5173"
totp:
  period: 30
  skew: 10
`

func TestViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "verimail", cfg.GetString("app.name"))
	assert.True(t, cfg.GetBool("app.debug"))
	assert.Equal(t, 8080, cfg.GetInt("server.port"))
	assert.Equal(t, 15*time.Second, cfg.GetSecond("server.read_timeout_seconds"))
	assert.Equal(t, uint(10), cfg.GetUint("totp.skew"))
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.GetArray("server.cors"))

	assert.Empty(t, cfg.GetString("missing.key"))
	assert.Nil(t, cfg.GetArray("missing.key"))
	assert.NoError(t, cfg.Close())
}

func TestViperFromBytesInvalid(t *testing.T) {
	_, err := NewViperFromBytes("", []byte(sampleYAML))
	assert.Error(t, err)

	_, err = NewViperFromBytes("yaml", []byte("a: [unterminated"))
	assert.Error(t, err)
}
