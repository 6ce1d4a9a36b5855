package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("jwt_secret"))
}

// RoleAuthMiddleware rejects requests whose bearer token is missing,
// invalid, or carries none of the required roles.
func RoleAuthMiddleware(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid Authorization header"})
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return jwtSecret(), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}

			// Simpan token ke context for the handlers.
			c.Set("user", token)

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token claims"})
			}
			role, ok := claims["role"].(string)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Role claim missing"})
			}

			for _, requiredRole := range requiredRoles {
				if requiredRole == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Forbidden"})
		}
	}
}

// GenerateToken signs an HS256 token carrying the user id and role.
func GenerateToken(userID int, role string, duration time.Duration) (string, error) {
	claims := &entities.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a raw token string and returns its user id and role.
func ParseToken(tokenString string) (int, string, error) {
	claims := &entities.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}
	return claims.UserID, claims.Role, nil
}

// ==========================================
// HELPERS FOR HANDLERS
// ==========================================

// ExtractTokenUserID reads the user id from the token stored in context.
func ExtractTokenUserID(c echo.Context) int {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return 0
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	// JWT numbers decode as float64.
	if idFloat, ok := claims["id"].(float64); ok {
		return int(idFloat)
	}
	return 0
}

// ExtractTokenRole reads the role claim from the token stored in context.
func ExtractTokenRole(c echo.Context) string {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return ""
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}
