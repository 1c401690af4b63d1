package i18n

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadLocales(t *testing.T) {
	t.Helper()
	locales, err := fs.Sub(EmbeddedLocales, "locales")
	require.NoError(t, err)
	require.NoError(t, Load(locales))
}

func TestLocalizer_T(t *testing.T) {
	loadLocales(t)

	t.Run("turkish is the default", func(t *testing.T) {
		l := NewLocalizer("tr")
		assert.Equal(t, "Geçersiz şifre", l.T("auth.invalidPassword"))
	})

	t.Run("english", func(t *testing.T) {
		l := NewLocalizer("en")
		assert.Equal(t, "Invalid password", l.T("auth.invalidPassword"))
	})

	t.Run("unsupported language falls back to default", func(t *testing.T) {
		l := NewLocalizer("de")
		assert.Equal(t, "Geçersiz şifre", l.T("auth.invalidPassword"))
	})

	t.Run("unknown key returns the key itself", func(t *testing.T) {
		l := NewLocalizer("tr")
		assert.Equal(t, "no.such.key", l.T("no.such.key"))
	})
}

func TestLocalizer_TWithParams(t *testing.T) {
	loadLocales(t)

	l := NewLocalizer("tr")
	msg := l.TWithParams("auth.tooManyAttempts", map[string]string{"retry": "2 minute(s)"})
	assert.Contains(t, msg, "2 minute(s)")
	assert.NotContains(t, msg, "{{retry}}")
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "tr"},
		{"tr-TR,tr;q=0.9", "tr"},
		{"en-US,en;q=0.9,tr;q=0.8", "en"},
		{"de-DE,de;q=0.9", "tr"},
		{"de-DE,de;q=0.9,en;q=0.5", "en"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.header), "header %q", tt.header)
	}
}
