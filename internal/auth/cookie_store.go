package auth

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/hkdf"
)

const (
	cookieSessionName = "gymtracker"
	cookieTokenKey    = "token"
)

// CookieStore keeps the session token in a signed and encrypted cookie, so the PWA
// does not have to handle the token itself.
type CookieStore struct {
	store *sessions.CookieStore
}

// NewCookieStore derives the signing key and the AES-256 key from the session secret.
func NewCookieStore(secret []byte, ttl time.Duration, secure bool) (*CookieStore, error) {
	hashKey, err := deriveKey(secret, "gymtracker cookie signing", 64)
	if err != nil {
		return nil, err
	}
	blockKey, err := deriveKey(secret, "gymtracker cookie encryption", 32)
	if err != nil {
		return nil, err
	}

	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store}, nil
}

func deriveKey(secret []byte, info string, size int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("cookie secret is empty")
	}
	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", info, err)
	}
	return key, nil
}

func (cs *CookieStore) SaveToken(w http.ResponseWriter, r *http.Request, token string) error {
	session, err := cs.store.Get(r, cookieSessionName)
	if err != nil && session == nil {
		return err
	}
	session.Values[cookieTokenKey] = token
	return session.Save(r, w)
}

// Token returns the token from the cookie, or an empty string if there is none.
func (cs *CookieStore) Token(r *http.Request) string {
	session, err := cs.store.Get(r, cookieSessionName)
	if err != nil || session == nil {
		return ""
	}
	token, _ := session.Values[cookieTokenKey].(string)
	return token
}

func (cs *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := cs.store.Get(r, cookieSessionName)
	if err != nil && session == nil {
		return err
	}
	delete(session.Values, cookieTokenKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
