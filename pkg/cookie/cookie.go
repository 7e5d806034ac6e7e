package cookie

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/signedtoken/pkg/signer"
)

const (
	minSecretLength = 32
	flashPrefix     = "__flash_"

	// defaultSignedMaxAge bounds signed-cookie validity when the manager's
	// default MaxAge option is unset (session cookies).
	defaultSignedMaxAge = 30 * 24 * time.Hour
)

// Manager reads and writes HTTP cookies, with optional tamper-evident
// signing backed by timestamped signed tokens. Multiple secrets enable key
// rotation: the first signs, all of them verify.
type Manager struct {
	secrets  [][]byte
	defaults Options
}

func New(secrets []string, opts ...Option) (*Manager, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([][]byte, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		keys = append(keys, []byte(s))
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)

	return &Manager{
		secrets:  keys,
		defaults: defaults,
	}, nil
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetSigned writes value wrapped in a timestamped signed token. The token is
// salted with the cookie name, so a value signed for one cookie never
// verifies under another.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(value))
	signed := signer.NewTimestamp(m.secrets[0], cookieSalt(name)).Sign([]byte(encoded))
	return m.Set(w, name, signed, opts...)
}

// GetSigned reads a cookie written by SetSigned, verifying its signature and
// age. The verification window is the manager's default MaxAge when set,
// defaultSignedMaxAge otherwise.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	encoded, err := m.unsign(name, signed)
	if err != nil {
		return "", err
	}

	value, err := base64.RawURLEncoding.DecodeString(string(encoded))
	if err != nil {
		return "", ErrInvalidFormat
	}
	return string(value), nil
}

// SetFlash stores a one-time JSON value as a signed, compressed token.
func (m *Manager) SetFlash(w http.ResponseWriter, r *http.Request, key string, value any) error {
	tok, err := signer.Dumps(value, m.secrets[0], flashSalt(key), true)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	return m.Set(w, flashPrefix+key, tok)
}

// GetFlash reads a flash value into dest and deletes its cookie.
// Flash cookies are removed after reading to prevent replay.
func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	cookieName := flashPrefix + key

	tok, err := m.Get(r, cookieName)
	if err != nil {
		return err
	}

	var raw json.RawMessage
	var lastErr error
	for _, secret := range m.secrets {
		raw, lastErr = signer.Loads[json.RawMessage](tok, secret, flashSalt(key), m.signedMaxAge())
		if lastErr == nil {
			break
		}
	}
	if lastErr != nil {
		return m.mapVerifyErr(lastErr)
	}

	m.Delete(w, cookieName)

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal flash: %w", err)
	}
	return nil
}

// unsign tries each secret in rotation order so cookies signed before a key
// change remain readable during the transition.
func (m *Manager) unsign(name, signed string) ([]byte, error) {
	var lastErr error
	for _, secret := range m.secrets {
		value, err := signer.NewTimestamp(secret, cookieSalt(name)).Unsign(signed, m.signedMaxAge())
		if err == nil {
			return value, nil
		}
		if lastErr == nil || errors.Is(err, signer.ErrExpired) {
			lastErr = err
		}
	}
	return nil, m.mapVerifyErr(lastErr)
}

func (m *Manager) mapVerifyErr(err error) error {
	switch {
	case errors.Is(err, signer.ErrExpired):
		return ErrCookieExpired
	case errors.Is(err, signer.ErrDeserializationFailed),
		errors.Is(err, signer.ErrDecompressionFailed),
		errors.Is(err, signer.ErrInvalidEncoding):
		return ErrInvalidFormat
	default:
		return ErrInvalidSignature
	}
}

func (m *Manager) signedMaxAge() time.Duration {
	if m.defaults.MaxAge > 0 {
		return time.Duration(m.defaults.MaxAge) * time.Second
	}
	return defaultSignedMaxAge
}

func cookieSalt(name string) []byte {
	return []byte("cookie:" + name)
}

func flashSalt(key string) []byte {
	return []byte("flash:" + key)
}
