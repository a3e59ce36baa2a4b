package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

const sessionCookieName = "session"

// signToken appends an HMAC-SHA256 signature so a tampered cookie is
// rejected before any storage lookup
func signToken(token string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(token))
	return token + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// verifyToken checks the signature and returns the bare token
func verifyToken(value string, secret []byte) (string, bool) {
	idx := strings.LastIndexByte(value, '.')
	if idx < 0 {
		return "", false
	}

	token, sig := value[:idx], value[idx+1:]
	want, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(token))
	if !hmac.Equal(mac.Sum(nil), want) {
		return "", false
	}
	return token, true
}

// SetSessionCookie writes the signed session cookie
func SetSessionCookie(w http.ResponseWriter, token string, secret []byte, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signToken(token, secret),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionToken extracts and verifies the session token from the request.
// Returns empty string when the cookie is absent or its signature is bad.
func SessionToken(r *http.Request, secret []byte) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	token, ok := verifyToken(cookie.Value, secret)
	if !ok {
		return ""
	}
	return token
}
