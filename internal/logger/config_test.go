package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		envVars    map[string]string
		wantLevel  string
		wantFormat string
	}{
		{
			name:       "環境変数なし",
			envVars:    map[string]string{},
			wantLevel:  "info",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=trueでデバッグレベル",
			envVars:    map[string]string{"DEBUG": "true"},
			wantLevel:  "debug",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=1（trueとして扱う）",
			envVars:    map[string]string{"DEBUG": "1"},
			wantLevel:  "debug",
			wantFormat: "text",
		},
		{
			name:       "DEBUGとLOG_LEVELの両方指定（LOG_LEVELが優先）",
			envVars:    map[string]string{"DEBUG": "true", "LOG_LEVEL": "ERROR"},
			wantLevel:  "error",
			wantFormat: "text",
		},
		{
			name:       "LOG_FORMAT=json",
			envVars:    map[string]string{"LOG_FORMAT": "JSON"},
			wantLevel:  "info",
			wantFormat: "json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEBUG", "")
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("LOG_FORMAT", "")
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			config := ConfigFromEnv()

			assert.Equal(t, tt.wantLevel, config.Level)
			assert.Equal(t, tt.wantFormat, config.Format)
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Run("無効なLOG_LEVELはエラー", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "invalid")
		_, err := NewFromEnv()
		assert.Error(t, err)
	})

	t.Run("無効なLOG_FORMATはエラー", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "xml")
		_, err := NewFromEnv()
		assert.Error(t, err)
	})

	t.Run("追加オプションが適用される", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")

		var buf bytes.Buffer
		logger, err := NewFromEnv(WithOutput(&buf))
		require.NoError(t, err)

		logger.Debug("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})
}
