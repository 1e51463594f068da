package service

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edumanage_backend/internals/configs"
	"edumanage_backend/internals/constants"
	"edumanage_backend/internals/features/users/auth/dto"
	"edumanage_backend/internals/features/users/auth/model"
	helper "edumanage_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(http.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(http.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func hashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func checkPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

/* ==========================
   JWT claims & cookies
========================== */

func buildAccessClaims(u model.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       u.UserID.String(),
		"user_id":   u.UserID.String(),
		"full_name": u.UserFullName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
		})
	}
}

func issueTokens(c *fiber.Ctx, u model.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to sign access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to sign refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.JsonOK(c, "login successful", fiber.Map{
		"user": fiber.Map{
			"user_id":        u.UserID,
			"user_full_name": u.UserFullName,
			"user_email":     u.UserEmail,
			"user_role":      u.UserRole,
		},
		"access_token": accessToken,
	})
}

/* ==========================
   REGISTER (admin only, gated by route)
========================== */

func Register(db *gorm.DB, c *fiber.Ctx, req dto.RegisterRequest) error {
	if !constants.IsValidRole(req.UserRole) {
		return helper.JsonError(c, http.StatusBadRequest, "invalid role")
	}

	var dup int64
	if err := db.Model(&model.UserModel{}).
		Where("user_email = ?", req.UserEmail).
		Count(&dup).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if dup > 0 {
		return helper.JsonError(c, http.StatusConflict, "email already registered")
	}

	hash, err := hashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "password hashing failed")
	}

	u := model.UserModel{
		UserFullName: req.UserFullName,
		UserEmail:    req.UserEmail,
		UserPassword: hash,
		UserRole:     req.UserRole,
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "registration successful", fiber.Map{
		"user_id":        u.UserID,
		"user_full_name": u.UserFullName,
		"user_email":     u.UserEmail,
		"user_role":      u.UserRole,
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx, req dto.LoginRequest) error {
	var u model.UserModel
	if err := db.Where("user_email = ?", req.UserEmail).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "email or password is incorrect")
		}
		return helper.WritePGError(c, err)
	}
	if !u.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "account is deactivated")
	}
	if err := checkPasswordHash(u.UserPassword, req.UserPassword); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "email or password is incorrect")
	}
	return issueTokens(c, u)
}

/* ==========================
   LOGIN via Google ID token
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx, idToken string) error {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helper.JsonError(c, http.StatusInternalServerError, "GOOGLE_CLIENT_ID is not set")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid Google ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "Google token carries no email")
	}

	var u model.UserModel
	err = db.Where("user_email = ?", email).First(&u).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First Google sign-in provisions a STUDENT account.
		u = model.UserModel{
			UserFullName: strings.TrimSpace(claimSet.Name),
			UserEmail:    email,
			UserPassword: "-",
			UserRole:     constants.RoleStudent,
			UserGoogleID: &claimSet.Sub,
			UserIsActive: true,
		}
		if u.UserFullName == "" {
			u.UserFullName = email
		}
		if err := db.Create(&u).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	case err != nil:
		return helper.WritePGError(c, err)
	default:
		if !u.UserIsActive {
			return helper.JsonError(c, http.StatusForbidden, "account is deactivated")
		}
		if u.UserGoogleID == nil {
			if err := db.Model(&u).Update("user_google_id", claimSet.Sub).Error; err != nil {
				log.Printf("[AUTH] link google id failed: %v", err)
			}
		}
	}
	return issueTokens(c, u)
}

/* ==========================
   REFRESH
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "refresh token is missing")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, http.StatusUnauthorized, "refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helper.JsonError(c, http.StatusUnauthorized, "refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "refresh token invalid")
	}

	var u model.UserModel
	if err := db.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "user not found")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "account is deactivated")
	}
	return issueTokens(c, u)
}

/* ==========================
   LOGOUT - blacklist access token
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "no access token")
	}

	// Read exp without verifying: an expired token can still be logged out.
	expiredAt := nowUTC().Add(accessTTLDefault)
	parser := jwt.NewParser()
	if unverified, _, err := parser.ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := unverified.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0).UTC()
			}
		}
	}

	entry := model.TokenBlacklistModel{Token: raw, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "logout successful", nil)
}

/* ==========================
   UPDATE USER (admin)
========================== */

// UpdateUser changes role/active flag. Demoting or deactivating the last
// active ADMIN is refused.
func UpdateUser(db *gorm.DB, c *fiber.Ctx, userID uuid.UUID, req dto.UpdateUserRequest) error {
	var u model.UserModel
	if err := db.Where("user_id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.WritePGError(c, err)
	}

	losesAdmin := u.UserRole == constants.RoleAdmin && u.UserIsActive &&
		((req.UserRole != nil && *req.UserRole != constants.RoleAdmin) ||
			(req.UserIsActive != nil && !*req.UserIsActive))
	if losesAdmin {
		var admins int64
		if err := db.Model(&model.UserModel{}).
			Where("user_role = ? AND user_is_active = true AND user_id <> ?", constants.RoleAdmin, userID).
			Count(&admins).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if admins == 0 {
			return helper.JsonError(c, http.StatusForbidden, "cannot remove the last active admin")
		}
	}

	if req.UserFullName != nil {
		u.UserFullName = strings.TrimSpace(*req.UserFullName)
	}
	if req.UserRole != nil {
		u.UserRole = *req.UserRole
	}
	if req.UserIsActive != nil {
		u.UserIsActive = *req.UserIsActive
	}

	if err := db.Save(&u).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "user updated", u)
}
