package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/timeline/internal/config"
)

var configExamplePath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	configExamplePath = filepath.Join(filepath.Dir(currentFile), "..", "..", "configs", "config.example.toml")
}

func TestParseAndValidate(t *testing.T) {
	cfg, err := config.ParseAndValidate(configExamplePath)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Stores.Driver)
	assert.Equal(t, 100*time.Millisecond, cfg.Services.PostRequestsProcessor.BackoffInitialInterval)
	assert.NotEmpty(t, cfg.Services.PostRequestsProcessor.Brokers)
}

func TestParseAndValidate_Custom(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		// Positive.
		{
			name:    "in-memory store",
			data:    baseConfig + "\n[stores]\ndriver = \"memory\"\n",
			wantErr: false,
		},

		// Negative.
		{
			name:    "unknown store driver",
			data:    baseConfig + "\n[stores]\ndriver = \"mongo\"\n",
			wantErr: true,
		},
		{
			name: "producer enabled without topic",
			data: baseConfig + "\n[stores]\ndriver = \"memory\"\n" +
				"\n[services.msg_producer]\nenabled = true\nbrokers = [\"localhost:9092\"]\n",
			wantErr: true,
		},
		{
			name:    "broken toml",
			data:    "[global\nenv = ",
			wantErr: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

			_, err := config.ParseAndValidate(path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

const baseConfig = `
[global]
env = "dev"

[log]
level = "info"

[servers.debug]
addr = "localhost:8079"

[services.post_requests_processor]
brokers = ["localhost:9092"]
consumers = 1
consumer_group = "timeline"
requests_topic = "timeline.post-requests"
dlq_topic = "timeline.post-requests.dlq"
`
