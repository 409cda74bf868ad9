// Package flash provides one-shot operator notices backed by Redis sessions.
//
// The original operator flow surfaces outcomes ("PDF generated", "record
// deleted", "no items selected") as flash messages: set on one request,
// shown once on the next history fetch, then gone. Notices live server-side
// in Redis; only an encrypted session ID travels in the client cookie
// (HttpOnly, Secure in production, SameSite Lax).
//
// Session keys should be 32 or 64 bytes for HMAC authentication, and 16,
// 24, or 32 bytes for AES encryption. Production deployments must use
// cryptographically random keys generated with:
//
//	openssl rand -base64 32
package flash

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	sessionName    = "solarbom_notices"
	redisKeyPrefix = "notices:"
	// Notices are short-lived by nature; an hour outlives any realistic
	// submit-then-review gap for a single operator.
	sessionMaxAge = 3600
)

// Store keeps flash notices in Redis, keyed by an encrypted session cookie.
type Store struct {
	client  *redis.Client
	codecs  []securecookie.Codec
	options *sessions.Options
}

// NewStore creates a Redis-backed flash store.
//
//   - client: redis.Client instance (from pkg/cache.RedisClient.Client())
//   - authKey: 32 or 64 bytes for HMAC authentication
//   - encryptionKey: 16, 24, or 32 bytes for AES encryption
//   - secureCookie: set true in production (HTTPS only); false for localhost dev
func NewStore(client *redis.Client, authKey, encryptionKey []byte, secureCookie bool) *Store {
	return &Store{
		client: client,
		codecs: securecookie.CodecsFromPairs(authKey, encryptionKey),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   sessionMaxAge,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Add appends a notice to the request's session. Failures are returned so
// callers can log them, but a lost notice never fails the request itself.
// A nil store drops the notice; the worker process runs without one.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, notice string) error {
	if s == nil {
		return nil
	}
	session, err := s.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("flash: get session: %w", err)
	}
	session.AddFlash(notice)
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("flash: save session: %w", err)
	}
	return nil
}

// Pop returns all pending notices and clears them. Nil-safe like Add.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []string {
	if s == nil {
		return nil
	}
	session, err := s.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	notices := make([]string, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(string); ok {
			notices = append(notices, msg)
		}
	}
	_ = session.Save(r, w) // persist the cleared flash list
	return notices
}

// Get returns a session for the given name, loading from Redis if a valid
// session cookie exists. Implements sessions.Store.
func (s *Store) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New creates a session. If a valid cookie exists, it decodes the session ID
// and loads data from Redis. A missing/expired/invalid cookie yields a fresh
// session. Implements sessions.Store.
func (s *Store) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil // no cookie → new session, no error
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil // invalid/tampered/expired cookie → new session
	}

	session.ID = id
	if err := s.load(r.Context(), session); err != nil {
		return session, nil // Redis key missing or expired → new session
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session to Redis and writes the encrypted session cookie.
// If MaxAge < 0, the session and its Redis key are deleted.
// Implements sessions.Store.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			_ = s.client.Del(r.Context(), redisKeyPrefix+session.ID).Err()
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(
			base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
			"=",
		)
	}

	if err := s.save(r.Context(), session); err != nil {
		return fmt.Errorf("flash: persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("flash: encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *Store) save(ctx context.Context, session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.client.Set(ctx, redisKeyPrefix+session.ID, buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("set session in redis: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, session *sessions.Session) error {
	data, err := s.client.Get(ctx, redisKeyPrefix+session.ID).Bytes()
	if err != nil {
		return fmt.Errorf("get session from redis: %w", err)
	}
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(&session.Values)
}
