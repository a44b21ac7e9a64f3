package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/syauqi/course-admin/internal/model"
)

// Claims carries the identity attributes encoded in the session token's
// payload segment. They are display hints only: the console never verifies
// the signature, authorization is enforced by the API server.
type Claims struct {
	UUIDUser string     `json:"uuid_user"`
	Name     string     `json:"name"`
	Email    string     `json:"email,omitempty"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsInstructor() bool {
	return c != nil && c.Role == model.RoleInstructor
}

// Decode extracts the claims from a bearer token without verifying its
// signature or expiry. Any malformed input (missing segment, bad base64,
// bad JSON) yields an error; callers treat that as the unauthenticated
// default for personalization and must not revoke the session over it.
func Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}
