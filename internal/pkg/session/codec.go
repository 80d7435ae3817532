package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification:
// malformed, unsigned, tampered with, or signed with the wrong key.
// Callers must treat it exactly like an absent session.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the identity carried inside the admin-session cookie.
type Claims struct {
	AdminId   uuid.UUID
	Username  string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
	IssuedAt  time.Time
}

// Codec signs and verifies session tokens. It is a pure function of its
// input and the secret; expiry is enforced by the cookie max-age, not by
// a claim inside the token.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Issue(claims *Claims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id":   claims.AdminId.String(),
		"username":   claims.Username,
		"is_admin":   claims.IsAdmin,
		"created_at": claims.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at": claims.UpdatedAt.UTC().Format(time.RFC3339),
		"iat":        now.Unix(),
	})
	return token.SignedString(c.secret)
}

// Verify fails closed: any structural or signature problem yields
// ErrInvalidToken, never a partially-populated Claims.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idStr, ok := mapClaims["admin_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	adminId, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, ok := mapClaims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	isAdmin, _ := mapClaims["is_admin"].(bool)

	claims := &Claims{
		AdminId:  adminId,
		Username: username,
		IsAdmin:  isAdmin,
	}
	if v, ok := mapClaims["created_at"].(string); ok {
		claims.CreatedAt, _ = time.Parse(time.RFC3339, v)
	}
	if v, ok := mapClaims["updated_at"].(string); ok {
		claims.UpdatedAt, _ = time.Parse(time.RFC3339, v)
	}
	if v, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(v), 0)
	}

	return claims, nil
}
