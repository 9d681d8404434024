package session

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/NotOriginal333/hotel-lab4/internal/web/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName = "resort_session"
	contextKey = "session"

	MsgStoreUnavailable = "Session storage is temporarily unavailable. Please try again."
)

// Manager loads the visitor's session before a handler runs and writes it
// back afterwards.
type Manager struct {
	store  Store
	codec  *CookieCodec
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, codec *CookieCodec, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		codec:  codec,
		ttl:    ttl,
		secure: secure,
	}
}

// Middleware attaches a *Session to the gin context. The cookie is (re)issued
// before the handler runs because handlers write the response themselves, so
// the stored entry is extended afterwards to match its expiry.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sess, err := m.load(c)
		if err != nil {
			// The cookie may still be valid, so it is left untouched.
			slog.ErrorContext(ctx, "Failed to load session", "error", err)
			response.Error(c, http.StatusServiceUnavailable, MsgStoreUnavailable)
			c.Abort()
			return
		}

		value, err := m.codec.Encode(sess.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to encode session cookie", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, value, int(m.ttl.Seconds()), "/", "", m.secure, true)

		Attach(c, sess)
		c.Next()

		m.persist(c, sess)
	}
}

func (m *Manager) persist(c *gin.Context, sess *Session) {
	ctx := c.Request.Context()

	switch {
	case sess.Destroyed():
		if sess.IsNew() {
			return
		}
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to delete session", "session.id", sess.ID, "error", err)
		}
	case sess.IsNew() || sess.Modified():
		if err := m.store.Save(ctx, sess.ID, &sess.data, m.ttl); err != nil {
			slog.ErrorContext(ctx, "Failed to save session", "session.id", sess.ID, "error", err)
		}
	default:
		if err := m.store.Touch(ctx, sess.ID, m.ttl); err != nil {
			slog.WarnContext(ctx, "Failed to extend session", "session.id", sess.ID, "error", err)
		}
	}
}

// load returns the visitor's session, or a new one when the cookie is missing,
// invalid or points at an expired entry. Store failures are returned as errors.
func (m *Manager) load(c *gin.Context) (*Session, error) {
	ctx := c.Request.Context()

	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return New(uuid.NewString()), nil
	}

	id, err := m.codec.Decode(value)
	if err != nil {
		slog.WarnContext(ctx, "Rejected session cookie", "error", err)
		return New(uuid.NewString()), nil
	}

	data, err := m.store.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return New(uuid.NewString()), nil
	}
	if err != nil {
		return nil, err
	}
	return newLoaded(id, data), nil
}

// FromContext returns the session attached by Middleware. It panics when the
// middleware is not installed.
func FromContext(c *gin.Context) *Session {
	return c.MustGet(contextKey).(*Session)
}

// Attach makes sess the session of the request.
func Attach(c *gin.Context, sess *Session) {
	c.Set(contextKey, sess)
}
