package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		env        map[string]string
		want       func(t *testing.T, cfg *Config)
		wantErrMsg string
	}{
		{
			name:   "defaults only",
			config: "",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3001, cfg.Server.Port)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowedOrigins)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 3306, cfg.Database.Port)
				assert.Equal(t, "wordquiz", cfg.Database.Database)
				assert.Equal(t, "user", cfg.Database.Username)
				assert.False(t, cfg.Speech.Enabled)
				assert.Equal(t, "python3", cfg.Speech.PythonBinary)
			},
		},
		{
			name: "explicit values",
			config: `server:
  port: 8081
  cors:
    allowed_origins:
      - https://quiz.example.com
database:
  host: db.internal
  port: 3307
  database: vocab
  username: quiz
  max_open_conns: 10
`,
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8081, cfg.Server.Port)
				assert.Equal(t, []string{"https://quiz.example.com"}, cfg.Server.CORS.AllowedOrigins)
				assert.Equal(t, "db.internal", cfg.Database.Host)
				assert.Equal(t, 3307, cfg.Database.Port)
				assert.Equal(t, "vocab", cfg.Database.Database)
				assert.Equal(t, 10, cfg.Database.MaxOpenConns)
			},
		},
		{
			name:   "password from environment",
			config: "",
			env:    map[string]string{"DB_PASSWORD": "secret"},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "secret", cfg.Database.Password)
			},
		},
		{
			name: "invalid server port",
			config: `server:
  port: -1
`,
			wantErrMsg: "invalid configuration",
		},
		{
			name: "speech script must be a readable file",
			config: `speech:
  enabled: true
  script: /nonexistent/gtts_synthesize.py
`,
			wantErrMsg: "must be an existing and readable file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var configFile string
			if tt.config != "" {
				configFile = filepath.Join(t.TempDir(), "config.yml")
				require.NoError(t, os.WriteFile(configFile, []byte(tt.config), 0644))
			} else {
				// Point at an empty directory so a developer's local config is not picked up.
				configFile = filepath.Join(t.TempDir(), "config.yml")
				require.NoError(t, os.WriteFile(configFile, []byte("{}\n"), 0644))
			}

			loader, err := NewConfigLoader(configFile)
			require.NoError(t, err)

			cfg, err := loader.Load()
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

func TestConfigLoader_Load_speechScriptReadable(t *testing.T) {
	tmpDir := t.TempDir()
	script := filepath.Join(tmpDir, "gtts_synthesize.py")
	require.NoError(t, os.WriteFile(script, []byte("print('ok')\n"), 0644))

	configFile := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("speech:\n  enabled: true\n  script: "+script+"\n"), 0644))

	loader, err := NewConfigLoader(configFile)
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, script, cfg.Speech.Script)
}
