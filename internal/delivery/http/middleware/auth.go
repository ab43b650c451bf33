package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/parking-registry/internal/config"
	"github.com/parking-registry/internal/pkg/errors"
	"github.com/parking-registry/internal/pkg/utils"
	"go.uber.org/zap"
)

// LocalsSubject - ключ c.Locals с subject из проверенного токена
const LocalsSubject = "auth_subject"

// Auth - проверка Bearer JWT (HS256). Токены выпускает внешний сервис,
// здесь только проверяются подпись, срок действия и issuer.
func Auth(cfg config.AuthConfig, logger *zap.Logger) fiber.Handler {
	if !cfg.Enabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	secret := []byte(cfg.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims := &jwt.RegisteredClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, keyFunc)
		if err != nil || !token.Valid {
			logger.Debug("Rejected token", zap.String("path", c.Path()), zap.Error(err))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
			logger.Debug("Rejected token issuer",
				zap.String("path", c.Path()),
				zap.String("issuer", claims.Issuer))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(LocalsSubject, claims.Subject)
		return c.Next()
	}
}
