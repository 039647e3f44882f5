package session

import (
	"encoding/json"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"
	goredis "github.com/redis/go-redis/v9"

	"github.com/FelixBrandt/SocialFox/internal/pkg/env"
	"github.com/FelixBrandt/SocialFox/internal/pkg/oauth"
)

// Session keys. The session holds at most one user entry: the normalized
// profile most recently produced by a callback.
const (
	AuthKey = "authenticated"
	UserKey = "user"
)

// NewStore creates the app session store. storage may be nil, in which
// case the fiber session middleware keeps sessions in memory (tests).
func NewStore(storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !env.IsDev(),
		Expiration:     72 * time.Hour,
		KeyLookup:      "cookie:session_id",
	})
}

// NewRedisStorage builds fiber session storage on the shared Redis
// connection. App sessions use database 1 and OAuth state database 2, so
// they never collide with cache keys in database 0.
func NewRedisStorage(client *goredis.Client, database int) fiber.Storage {
	host, port := "localhost", 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if client != nil {
		opts := client.Options()
		if h, p, err := net.SplitHostPort(opts.Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		} else if opts.Addr != "" {
			host = opts.Addr
		}
		if opts.Password != "" {
			password = opts.Password
		}
	}

	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: database,
		Reset:    false,
	})
}

// SetUser replaces the session's user entry with the normalized profile.
// A later login simply overwrites it, possibly with a different provider.
func SetUser(c *fiber.Ctx, store *session.Store, p oauth.Profile) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	sess.Set(AuthKey, true)
	sess.Set(UserKey, string(payload))
	return sess.Save()
}

// CurrentUser returns the profile stored in the session, if any. Both the
// authenticated flag and the user entry must be present; a session that was
// never marked authenticated stays anonymous.
func CurrentUser(c *fiber.Ctx, store *session.Store) (oauth.Profile, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return oauth.Profile{}, false
	}

	if authed, ok := sess.Get(AuthKey).(bool); !ok || !authed {
		return oauth.Profile{}, false
	}

	raw, ok := sess.Get(UserKey).(string)
	if !ok || raw == "" {
		return oauth.Profile{}, false
	}

	var p oauth.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return oauth.Profile{}, false
	}
	return p, true
}

// Clear destroys the session entirely. Identity records are untouched.
func Clear(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
