// Package auth implements credential login and JWT issuing for the admin
// panel.
package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// SecretKey signs every access token. Must be set in the environment.
var SecretKey = os.Getenv("SECRET_KEY")

// JwtIssuer identifies tokens minted by this service.
const JwtIssuer = "SatelliteRecruit"

// accessTokenTTL bounds how long an admin session token stays valid.
const accessTokenTTL = time.Hour

// GenerateAccessToken mints a signed access token whose subject is the
// user id.
func GenerateAccessToken(userID uint) (string, error) {

	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    JwtIssuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signedToken, err := generatedAccessToken.SignedString([]byte(SecretKey))
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, nil
}

// ValidatedToken parses and verifies an access token, rejecting any signing
// method other than HMAC.
func ValidatedToken(encodedToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodedToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isValid := token.Method.(*jwt.SigningMethodHMAC); !isValid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(SecretKey), nil
	})
}
