package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin grants access to catalog reload and manual rate refresh.
const RoleAdmin = "admin"

// Claims are the JWT claims this service understands. Subject is the user ID.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

var errNoBearer = errors.New("no bearer token")

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return authMiddleware(jwtSecret, true)
}

// OptionalAuth attaches the principal when a valid token is present and lets
// anonymous requests through. An invalid token is still rejected.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return authMiddleware(jwtSecret, false)
}

func authMiddleware(jwtSecret string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		claims, err := parseBearer(c.GetHeader("Authorization"), jwtSecret)
		if errors.Is(err, errNoBearer) && !required {
			c.Next()
			return
		}
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			switch {
			case errors.Is(err, errNoBearer):
				msg = "Authorization header format must be Bearer {token}"
			case errors.Is(err, jwt.ErrTokenExpired):
				msg = "Token has expired"
			case errors.Is(err, jwt.ErrTokenNotValidYet):
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Add user ID to the logger and store both in the request context
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx := WithUserID(c.Request.Context(), userID)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), userID)
		c.Set(string(rolesKey), claims.Roles)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}

func parseBearer(header, jwtSecret string) (*Claims, error) {
	if header == "" {
		return nil, errNoBearer
	}
	scheme, tokenString, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
		return nil, errNoBearer
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// RequireRole aborts with 403 unless the authenticated principal holds role.
// It must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get(string(rolesKey))
		list, _ := roles.([]string)
		if !slices.Contains(list, role) {
			GetLoggerFromContext(c).Warn("Forbidden", slog.String("required_role", role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
