package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edumanage_backend/internals/configs"
	authModel "edumanage_backend/internals/features/users/auth/model"
	helper "edumanage_backend/internals/helpers"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Bearer header or cookie
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing access token")
		}

		// 2) blacklist check (once per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				return helper.JsonError(c, fiber.StatusUnauthorized, "token is revoked")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[AUTH] blacklist lookup error: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
			}
			c.Locals("token_checked", true)
		}

		// 3) parse & verify
		secretKey := configs.JWTSecret
		if secretKey == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "missing JWT secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid token")
		}

		// 4) exp, with small clock leeway
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "token expired")
		}

		// 5) subject + role into Locals
		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid or missing user id")
		}
		c.Locals("user_id", userID.String())
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expiry := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiry.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		if idStr, ok2 := claims["user_id"].(string); ok2 {
			sub = idStr
		} else {
			return uuid.Nil, errors.New("missing subject")
		}
	}
	return uuid.Parse(sub)
}
