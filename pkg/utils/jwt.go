package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

type JWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	jwt.RegisteredClaims
}

type AdminContext struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// GenerateToken issues a signed session token for an admin, valid 7 days.
func GenerateToken(adminID uuid.UUID, email, name, jwtSecret string) (string, error) {
	claims := JWTClaims{
		AdminID: adminID.String(),
		Email:   email,
		Name:    name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func ValidateToken(tokenString, jwtSecret string) (*AdminContext, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	if strings.HasPrefix(tokenString, "Bearer ") {
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &AdminContext{
		ID:    adminID,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

func GetAdminFromContext(c *fiber.Ctx) (*AdminContext, error) {
	admin := c.Locals("admin")
	if admin == nil {
		return nil, errors.New("admin not found in context")
	}

	adminCtx, ok := admin.(*AdminContext)
	if !ok {
		return nil, errors.New("invalid admin context type")
	}

	return adminCtx, nil
}
