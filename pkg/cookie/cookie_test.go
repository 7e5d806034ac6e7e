package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signedtoken/pkg/cookie"
)

const (
	testSecret    = "this-is-a-very-long-secret-key-32-chars-long"
	rotatedSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

// requestWith returns a request carrying the cookies written by fn.
func requestWith(t *testing.T, fn func(w http.ResponseWriter)) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	fn(rec)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{name: "no secrets", secrets: []string{}, wantErr: cookie.ErrNoSecret},
		{name: "empty secrets", secrets: []string{"", ""}, wantErr: cookie.ErrNoSecret},
		{name: "secret too short", secrets: []string{"short"}, wantErr: cookie.ErrSecretTooShort},
		{name: "valid secret", secrets: []string{testSecret}},
		{name: "rotation pair", secrets: []string{testSecret, rotatedSecret}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.secrets)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlainCookies(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	r := requestWith(t, func(w http.ResponseWriter) {
		require.NoError(t, m.Set(w, "theme", "dark"))
	})

	got, err := m.Get(r, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	_, err = m.Get(r, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestSignedCookies(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		r := requestWith(t, func(w http.ResponseWriter) {
			require.NoError(t, m.SetSigned(w, "session", "user-42"))
		})

		got, err := m.GetSigned(r, "session")
		require.NoError(t, err)
		assert.Equal(t, "user-42", got)
	})

	t.Run("tampered value rejected", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(rec, "session", "user-42"))
		signed := rec.Result().Cookies()[0].Value

		tampered := []byte(signed)
		tampered[0] ^= 0x01
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: string(tampered)})

		_, err := m.GetSigned(r, "session")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("unsigned value rejected", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: "user-42"})

		_, err := m.GetSigned(r, "session")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("cookie name scopes the signature", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(rec, "session", "user-42"))
		signed := rec.Result().Cookies()[0].Value

		// same token replayed under a different cookie name
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "remember_me", Value: signed})

		_, err := m.GetSigned(r, "remember_me")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("key rotation keeps old cookies valid", func(t *testing.T) {
		t.Parallel()
		old, err := cookie.New([]string{rotatedSecret})
		require.NoError(t, err)
		rotated, err := cookie.New([]string{testSecret, rotatedSecret})
		require.NoError(t, err)

		r := requestWith(t, func(w http.ResponseWriter) {
			require.NoError(t, old.SetSigned(w, "session", "user-42"))
		})

		got, err := rotated.GetSigned(r, "session")
		require.NoError(t, err)
		assert.Equal(t, "user-42", got)
	})
}

func TestFlash(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	type notice struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}

	t.Run("round trip and delete", func(t *testing.T) {
		t.Parallel()
		want := notice{Level: "info", Message: "saved"}

		r := requestWith(t, func(w http.ResponseWriter) {
			require.NoError(t, m.SetFlash(w, nil, "notice", want))
		})

		rec := httptest.NewRecorder()
		var got notice
		require.NoError(t, m.GetFlash(rec, r, "notice", &got))
		assert.Equal(t, want, got)

		// reading must clear the cookie
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "__flash_notice", cookies[0].Name)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("missing flash", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		var got notice
		err := m.GetFlash(httptest.NewRecorder(), r, "notice", &got)
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("forged flash rejected", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "__flash_notice", Value: "not-a-valid-token"})

		var got notice
		err := m.GetFlash(httptest.NewRecorder(), r, "notice", &got)
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("no secrets configured", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.NewFromConfig(cookie.Config{})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("secrets parsed from list", func(t *testing.T) {
		t.Parallel()
		cfg := cookie.Config{
			Secrets: testSecret + " , " + rotatedSecret,
			Path:    "/app",
			MaxAge:  3600,
		}

		m, err := cookie.NewFromConfig(cfg)
		require.NoError(t, err)

		r := requestWith(t, func(w http.ResponseWriter) {
			require.NoError(t, m.SetSigned(w, "session", "user-42"))
		})
		got, err := m.GetSigned(r, "session")
		require.NoError(t, err)
		assert.Equal(t, "user-42", got)
	})
}
