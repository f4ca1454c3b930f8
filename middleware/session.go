package middleware

import (
	"context"
	"strings"

	"nepwork/models"
	"nepwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenRememberer persists a session's bearer token for later requests.
type TokenRememberer interface {
	RememberToken(ctx context.Context, sess *models.Session)
}

// SessionOptions configures SessionMiddleware. AllowUnverified reads claims
// from tokens that fail verification; it is for development only and
// config.Validate refuses it in production.
type SessionOptions struct {
	JWTSecret       string
	AllowUnverified bool
	DevEmailAuth    bool
	Tokens          TokenRememberer // optional
}

// SessionMiddleware attaches the caller's identity to the request. It never
// aborts: an anonymous session is forwarded as-is and the backend decides.
func SessionMiddleware(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := &models.Session{}

		if token := bearerToken(c); token != "" {
			sess.Token = token
			claims, verified, err := readClaims(token, opts)
			if err != nil {
				// Anonymous here; the backend still gets the token and has the final word.
				utils.LoggerFrom(c).Warn("unreadable session token", zap.Error(err))
			} else {
				sess.Email = claims.Email
				sess.Username = claims.Name
				sess.ClaimRole = claims.Role
				sess.Verified = verified
			}
		} else if opts.DevEmailAuth {
			sess.Email = strings.TrimSpace(c.GetHeader(utils.DevEmailHeader))
		}

		if opts.Tokens != nil && sess.Verified {
			opts.Tokens.RememberToken(c.Request.Context(), sess)
		}
		c.Set(utils.SessionContextKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session attached by SessionMiddleware, or an
// anonymous one.
func SessionFrom(c *gin.Context) *models.Session {
	if v, exists := c.Get(utils.SessionContextKey); exists {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	return &models.Session{}
}

func readClaims(token string, opts SessionOptions) (*utils.SessionClaims, bool, error) {
	claims, err := utils.ParseSessionToken(token, opts.JWTSecret)
	if err == nil {
		return claims, true, nil
	}
	if !opts.AllowUnverified {
		return nil, false, err
	}
	claims, err = utils.ParseUnverifiedSessionToken(token)
	return claims, false, err
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
