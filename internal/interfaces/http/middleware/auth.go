package middleware

import (
	"strings"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// identityKey is the fiber.Ctx locals key carrying the caller identity.
const identityKey = "identity"

// supabaseClaims models the access token issued by the identity provider.
// Email verification lives in user_metadata; some token versions also carry
// it at the top level, so both are honored.
type supabaseClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	UserMetadata  struct {
		EmailVerified bool `json:"email_verified"`
	} `json:"user_metadata"`
}

// NewAuthMiddleware parses a bearer token when present and stores the
// resulting identity in locals. Requests without a valid token pass through
// unauthenticated; use cases decide which operations require identity, so
// reads stay open while mutations fail with Unauthenticated.
func NewAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return c.Next()
		}

		claims := &supabaseClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !parsed.Valid {
			// Invalid tokens are treated as anonymous, not as an error
			return c.Next()
		}

		c.Locals(identityKey, &entities.Identity{
			ID:            claims.Subject,
			Email:         claims.Email,
			EmailVerified: claims.EmailVerified || claims.UserMetadata.EmailVerified,
		})
		return c.Next()
	}
}

// RequireIdentity rejects requests that did not present a valid token.
// Applied to the authenticated route group.
func RequireIdentity(c *fiber.Ctx) error {
	if GetIdentity(c) == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}
	return c.Next()
}

// GetIdentity extracts the caller identity from locals, or nil if anonymous.
func GetIdentity(c *fiber.Ctx) *entities.Identity {
	if ident, ok := c.Locals(identityKey).(*entities.Identity); ok {
		return ident
	}
	return nil
}

func extractBearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
