package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/library", "/media/library"},
		{"single trailing slash", "/media/library/", "/media/library"},
		{"multiple trailing slashes", "/media/library///", "/media/library"},
		{"trailing backslash", `D:\Videos\`, `D:\Videos`},
		{"root path", "/", "/"},
		{"relative path", "videos", "videos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestFolderName(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name   string
		folder string
		want   string
	}{
		{"absolute posix", "/media/Home Movies", "Home Movies"},
		{"trailing slash", "/media/clips/", "clips"},
		{"windows path", `C:\Video\2019`, "2019"},
		{"relative single segment", "clips", "clips"},
		{"root", "/", ""},
		{"current directory", ".", filepath.Base(wd)},
		{"current directory with slash", "./", filepath.Base(wd)},
		{"parent directory", "..", filepath.Base(filepath.Dir(wd))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Folder = tt.folder
			assert.Equal(t, tt.want, cfg.FolderName())
		})
	}
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogDir = filepath.Join("var", "tmp")
	cfg.Folder = "/media/clips/"
	assert.Equal(t, filepath.Join("var", "tmp", "ffmpeg-clips.log"), cfg.LogPath())

	cfg.Folder = "/"
	assert.Equal(t, filepath.Join("var", "tmp", "ffmpeg-root.log"), cfg.LogPath())

	root := filepath.Join(t.TempDir(), "Holiday")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "day1"), 0o755))
	chdir(t, filepath.Join(root, "day1"))

	cfg.Folder = "."
	assert.Equal(t, filepath.Join("var", "tmp", "ffmpeg-day1.log"), cfg.LogPath())
	cfg.Folder = ".."
	assert.Equal(t, filepath.Join("var", "tmp", "ffmpeg-Holiday.log"), cfg.LogPath())
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate(true)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Pattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "**/*.{mp4"
	assert.Error(t, cfg.Validate(true))
}

func TestValidate_EmptyValidator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validator = "  "
	assert.Error(t, cfg.Validate(true))
}

func TestValidate_RequiresFolder(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(false), "scan needs a folder")
	assert.NoError(t, cfg.Validate(true), "check does not need a folder")

	cfg.Folder = "/media/clips"
	assert.NoError(t, cfg.Validate(false))
}

func TestValidateFolder(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	cfg := DefaultConfig()

	cfg.Folder = dir
	assert.NoError(t, cfg.ValidateFolder())

	cfg.Folder = filepath.Join(dir, "missing")
	assert.ErrorIs(t, cfg.ValidateFolder(), ErrFolderNotFound)

	cfg.Folder = file
	assert.ErrorIs(t, cfg.ValidateFolder(), ErrNotDirectory)
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "ffmpeg", cfg.Validator)
	assert.Equal(t, "**/*.mp4", cfg.Pattern)
	assert.Equal(t, os.TempDir(), cfg.LogDir)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.Verbose)
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("muxscan", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	require.NoError(t, fs.Parse([]string{"--ffmpeg", "/opt/ffmpeg/bin/ffmpeg", "--color", "NEVER", "-v", "--log-dir", "/var/log", "-c", "--version"}))
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.Validator)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, "/var/log", cfg.LogDir)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.CheckOnly)
	assert.True(t, cfg.ShowVersion)
}

func TestBindFlags_InvalidColor(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("muxscan", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, &cfg)

	assert.Error(t, fs.Parse([]string{"--color", "sometimes"}))
	assert.Equal(t, ColorAuto, cfg.ColorMode)
}
