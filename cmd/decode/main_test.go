package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rawterm/ansi"
	"github.com/jcorbin/rawterm/internal/logger"
	"github.com/jcorbin/rawterm/termkey"
)

func TestFormatEvent(t *testing.T) {
	for _, tc := range []struct {
		ev   termkey.Event
		raw  string
		want string
	}{
		{termkey.Char('a').Event(), "a",
			`KeyEvent         'a'                  "a"`},
		{termkey.Char('€').Event(), "€",
			`KeyEvent         '€'                  "€"`},
		{termkey.Ctrl('c').Event(), "\x03",
			`KeyEvent         Ctrl+c               "\x03"`},
		{termkey.Press(termkey.MouseLeft, 5, 5).Event(), "\x1b[<0;5;5M",
			`MouseEvent       Press(Left)@5,5      "\x1b[<0;5;5M"`},
		{termkey.Unsupported([]byte("\x1b[x")), "\x1b[x",
			`UnsupportedEvent -                    "\x1b[x"`},
	} {
		t.Run(tc.ev.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, formatEvent(tc.ev, []byte(tc.raw)))
		})
	}
}

func TestWriteEvent(t *testing.T) {
	var buf ansi.Buffer
	writeEvent(&buf, termkey.Ctrl('c').Event(), []byte{0x03}, "again")
	got := string(buf.Bytes())
	assert.True(t, strings.HasPrefix(got, "KeyEvent "))
	assert.Contains(t, got, "\x1b[38;5;3magain\x1b[m")
	assert.True(t, strings.HasSuffix(got, "\r\n"))
}

func TestRunBatch(t *testing.T) {
	in := strings.NewReader("a\x1b[A\x1b[<0;2;3M\x1b[99x\x1b")
	var out bytes.Buffer
	require.NoError(t, runBatch(defaultConfig(), logger.Discard, in, &out))
	assert.Equal(t, []string{
		formatEvent(termkey.Char('a').Event(), []byte("a")),
		formatEvent(termkey.KeyUp.Event(), []byte("\x1b[A")),
		formatEvent(termkey.Press(termkey.MouseLeft, 2, 3).Event(), []byte("\x1b[<0;2;3M")),
		formatEvent(termkey.Unsupported([]byte("\x1b[99x")), []byte("\x1b[99x")),
		formatEvent(termkey.KeyEsc.Event(), []byte("\x1b")),
	}, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))
}

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := parseConfig(nil, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
raw = false
mouse = true
max_sequence_len = 16

[log]
level = "debug"
format = "json"
`), 0o600))

	t.Run("file", func(t *testing.T) {
		cfg, err := parseConfig([]string{"-config", path}, io.Discard)
		require.NoError(t, err)
		assert.False(t, cfg.Raw)
		assert.True(t, cfg.Mouse)
		assert.False(t, cfg.Alt)
		assert.Equal(t, 16, cfg.MaxSequenceLen)
		assert.Equal(t, logger.DebugLevel, cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("flags win", func(t *testing.T) {
		cfg, err := parseConfig([]string{"-config", path, "-raw", "-max-seq", "8", "-log-level", "error"}, io.Discard)
		require.NoError(t, err)
		assert.True(t, cfg.Raw)
		assert.True(t, cfg.Mouse)
		assert.Equal(t, 8, cfg.MaxSequenceLen)
		assert.Equal(t, logger.ErrorLevel, cfg.Log.Level)
	})

	t.Run("default path", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "rawterm"), 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "rawterm", "decode.toml"), []byte("alt = true\n"), 0o600))
		defer os.Remove(filepath.Join(dir, "rawterm", "decode.toml"))
		cfg, err := parseConfig(nil, io.Discard)
		require.NoError(t, err)
		assert.True(t, cfg.Alt)
	})

	for _, tc := range []struct {
		name string
		args []string
		toml string
		err  string
	}{
		{name: "missing file", args: []string{"-config", filepath.Join(dir, "nope.toml")}, err: "nope.toml"},
		{name: "unknown key", toml: "colour = true\n", err: "unknown keys"},
		{name: "bad level", toml: "[log]\nlevel = \"loud\"\n", err: "unknown log level"},
		{name: "bad format", args: []string{"-log-format", "xml"}, err: "unknown log format"},
		{name: "bad max", args: []string{"-max-seq", "0"}, err: "must be positive"},
		{name: "extra args", args: []string{"foo"}, err: "unexpected arguments"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			args := tc.args
			if tc.toml != "" {
				p := filepath.Join(t.TempDir(), "bad.toml")
				require.NoError(t, os.WriteFile(p, []byte(tc.toml), 0o600))
				args = append([]string{"-config", p}, args...)
			}
			_, err := parseConfig(args, io.Discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestOpenLog(t *testing.T) {
	log, closeLog, err := logConfig{Format: "text"}.openLog(true)
	require.NoError(t, err)
	assert.Equal(t, logger.Discard, log)
	require.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "decode.log")
	log, closeLog, err = logConfig{Level: logger.InfoLevel, File: path, Format: "json"}.openLog(true)
	require.NoError(t, err)
	log.Info("hello", "n", 1)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"n":1`)
}
