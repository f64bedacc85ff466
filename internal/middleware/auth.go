package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/theatrelog/api/internal/dto"
	"github.com/theatrelog/api/internal/token"
)

// Protected guards a route group with bearer-token authentication.
// A missing Authorization header and an invalid or expired token get
// distinct messages, both 401.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			msg := "Invalid or expired token"
			if token.FromAuthHeader(c.Get(fiber.HeaderAuthorization)) == "" {
				msg = "Access token is required"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(msg))
		},
	})
}

// Identity is the authenticated caller decoded from token claims.
type Identity struct {
	ID     uuid.UUID
	UserID string
}

// CurrentUser extracts the caller's identity from the verified JWT that
// Protected stored in context locals.
func CurrentUser(c *fiber.Ctx) (Identity, error) {
	t, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return Identity{}, errors.New("no token in context")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, err
	}

	userID, _ := claims["userId"].(string)
	return Identity{ID: id, UserID: userID}, nil
}
