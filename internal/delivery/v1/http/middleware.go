package http

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/matbakh-tech/go-backend/internal/cfg"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuth проверяет секрет администратора и выдаёт JWT-токены
// для административных маршрутов.
type AdminAuth struct {
	cfg *cfg.AdminCfg
}

func NewAdminAuth(cfg *cfg.AdminCfg) *AdminAuth {
	return &AdminAuth{cfg: cfg}
}

// CheckSecret сверяет предъявленный секрет с настроенным за постоянное время.
func (a *AdminAuth) CheckSecret(secret string) error {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.cfg.Secret)) != 1 {
		return e.ErrInvalidCredentials
	}

	return nil
}

// IssueToken выдаёт подписанный токен административной сессии.
func (a *AdminAuth) IssueToken(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(a.cfg.SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(a.cfg.JWTKey))
}

// verifyToken проверяет подпись и срок действия токена.
func (a *AdminAuth) verifyToken(tokenStr string) error {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrInvalidToken
		}

		return []byte(a.cfg.JWTKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return e.ErrInvalidToken
	}

	return nil
}

// Middleware пропускает запрос дальше только с валидным Bearer-токеном.
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			WriteError(w, e.ErrInvalidToken)
			return
		}

		if err := a.verifyToken(tokenStr); err != nil {
			WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
