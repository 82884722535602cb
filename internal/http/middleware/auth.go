package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"guidance-portal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authKey = "auth"

// RequireRole admits requests carrying an HS256 bearer token whose role
// claim is one of roles. An empty secret disables the check, for local
// runs behind an upstream gateway.
func RequireRole(secret string, roles ...string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if len(key) == 0 {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortAuth(c, http.StatusUnauthorized, "no_auth_header", "ต้องเข้าสู่ระบบก่อน")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			abortAuth(c, http.StatusUnauthorized, "invalid_token", "โทเคนไม่ถูกต้องหรือหมดอายุ")
			return
		}

		rc, err := requestContext(claims)
		if err != nil {
			abortAuth(c, http.StatusUnauthorized, "invalid_token_claims", "อ่านข้อมูลผู้ใช้จากโทเคนไม่ได้")
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, rc.Role) {
			abortAuth(c, http.StatusForbidden, "forbidden", "ไม่มีสิทธิ์เข้าถึงรายงาน")
			return
		}

		c.Set(authKey, rc)
		c.Next()
	}
}

// GetRequestContext returns the caller identity set by RequireRole.
func GetRequestContext(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(authKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	rc, ok := v.(domain.RequestContext)
	return rc, ok
}

func requestContext(claims jwt.MapClaims) (domain.RequestContext, error) {
	id, ok := claims["user_id"].(float64)
	if !ok {
		return domain.RequestContext{}, errors.New("user_id claim missing")
	}
	role, _ := claims["role"].(string)
	return domain.RequestContext{UserID: domain.ID(id), Role: strings.ToLower(strings.TrimSpace(role))}, nil
}

func abortAuth(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": GetRequestID(c),
	})
}
