package middleware

import (
	"net/http"
	"time"

	"loomline-be/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionCookie = "loomline_session"

// SessionMiddleware gives every visitor a stable session identity: a signed
// token carrying a random session id, set as a cookie on first contact.
// This is not authentication; there are no accounts. The id only keys the
// visitor's cart, checkout flow and alerts.
type SessionMiddleware struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionMiddleware(secret string, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{secret: []byte(secret), ttl: ttl}
}

func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := m.sessionIDFromCookie(r)
		if sessionID == "" {
			sessionID = uuid.New().String()

			token, err := m.mint(sessionID)
			if err != nil {
				logger.FromCtx(r.Context()).Error("failed to mint session token", zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := logger.WithSessionID(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) sessionIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		// A bad cookie just means a fresh session.
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func (m *SessionMiddleware) mint(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// SessionID returns the session id the middleware attached to the request.
func SessionID(r *http.Request) string {
	return logger.SessionIDFrom(r.Context())
}
