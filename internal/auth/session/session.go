package session

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"net/http"
	"sharedCalendar/internal/models"
	"strings"
	"sync"
	"time"
)

const CookieName = "calendar_session"

var (
	ErrMissingSession = errors.New("missing session")
	ErrInvalidSession = errors.New("invalid session")
)

type Claims struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"adm"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the signed session cookie. The cookie has no
// Max-Age so it lives as long as the browser session; the token expiry caps
// it regardless. Tokens ended by Revoke are remembered by id until they
// expire. The list is in memory, so a restart forgets it.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		secure:  secure,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (m *Manager) Issue(w http.ResponseWriter, user models.SessionUser) error {
	if user.Email == "" {
		return ErrInvalidSession
	}

	now := m.now()
	claims := &Claims{
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *Manager) Read(r *http.Request) (models.SessionUser, error) {
	claims, err := m.parse(r)
	if err != nil {
		return models.SessionUser{}, err
	}

	if m.isRevoked(claims.ID) {
		return models.SessionUser{}, ErrInvalidSession
	}

	return models.SessionUser{Email: claims.Email, IsAdmin: claims.IsAdmin}, nil
}

// Revoke ends the token presented with r on the server side. Requests
// without a valid token are ignored.
func (m *Manager) Revoke(r *http.Request) {
	claims, err := m.parse(r)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, exp := range m.revoked {
		if !exp.After(now) {
			delete(m.revoked, id)
		}
	}

	m.revoked[claims.ID] = claims.ExpiresAt.Time
}

func (m *Manager) isRevoked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.revoked[id]
	return ok
}

func (m *Manager) parse(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil, ErrMissingSession
	}

	parsed, err := jwt.ParseWithClaims(cookie.Value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Email == "" {
		return nil, ErrInvalidSession
	}

	return claims, nil
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
