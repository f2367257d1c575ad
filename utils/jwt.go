package utils

import (
	"errors"
	"os"
	"time"

	"voyago/models"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "voyago-dev"
	}
	return secret
}

// GenerateToken creates a signed JWT token for the given subject and
// contact claims. Tokens are normally issued by the external identity
// provider; this helper exists for local development and tests.
func GenerateToken(subject, name, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"name":  name,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// ExtractSessionFromToken extracts the caller identity and contact
// defaults from a valid JWT token string.
func ExtractSessionFromToken(tokenString string) (models.Session, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Session{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Session{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Session{}, errors.New("token does not contain a valid 'sub' claim")
	}

	sess := models.Session{UserID: sub}
	if name, ok := claims["name"].(string); ok {
		sess.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		sess.Email = email
	}
	if phone, ok := claims["phone"].(string); ok {
		sess.Phone = phone
	}
	return sess, nil
}
