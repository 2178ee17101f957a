package logutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"ordered_index/pkg/logutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logutil.Level
		wantErr bool
	}{
		{"DEBUG", logutil.DEBUG, false},
		{"info", logutil.INFO, false},
		{"Warn", logutil.WARN, false},
		{"ERROR", logutil.ERROR, false},
		{"verbose", logutil.INFO, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logutil.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFlagValue(t *testing.T) {
	lv := logutil.WARN
	require.NoError(t, lv.Set("debug"))
	assert.Equal(t, logutil.DEBUG, lv)
	assert.Equal(t, "DEBUG", lv.String())
	assert.Equal(t, "level", lv.Type())
	assert.Error(t, lv.Set("nope"))
}

func TestLogToFileRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx.log")
	require.NoError(t, logutil.InitLogger(path, logutil.WARN))
	defer logutil.InitLogger("stdout", logutil.INFO)

	logutil.Debug("hidden %d", 1)
	logutil.Warn("shown %v", []int{1, 2})
	require.NoError(t, logutil.CloseLogger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown [1,2]")
	assert.Contains(t, string(data), "logutil_test.go")
}
