// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"crypto/subtle"
	"log"

	"cardvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"
)

const realm = "cardvault"

// Credentials is the single API user. When PasswordHash is set it is a
// bcrypt hash and takes precedence over Password.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Configured reports whether any password was provided.
func (c Credentials) Configured() bool {
	return c.Password != "" || c.PasswordHash != ""
}

// Authorize checks a username/password pair in constant time for the
// plain password, or through bcrypt for a hash.
func (c Credentials) Authorize(username, password string) bool {
	if !c.Configured() {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1

	var passOK bool
	if c.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	}

	return userOK && passOK
}

// BasicAuth protects the card routes with HTTP basic credentials.
func BasicAuth(creds Credentials) fiber.Handler {
	if !creds.Configured() {
		log.Println("⚠️ No API password configured, every protected request will be rejected")
	}

	return basicauth.New(basicauth.Config{
		Realm:      realm,
		Authorizer: creds.Authorize,
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `basic realm="`+realm+`"`)
			return response.Unauthorized(c)
		},
	})
}
