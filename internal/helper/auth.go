package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	Secret string
}

func SetupAuth(s string) Auth {
	return Auth{Secret: s}
}

func (a Auth) GenerateToken(user *domain.User) (string, error) {
	if user == nil || user.ID == uuid.Nil || user.Email == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now().Unix()
	exp := time.Now().Add(24 * time.Hour).Unix()

	universityID := ""
	if user.UniversityID != nil {
		universityID = user.UniversityID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":       user.ID.String(),
		"email":         user.Email,
		"role":          string(user.Role),
		"university_id": universityID,
		"iat":           now,
		"exp":           exp,
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (dto.AuthResponse, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthResponse{}, errors.New("missing token")
	}

	// accept "Bearer <token>" or a bare token
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.AuthResponse{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.AuthResponse{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthResponse{}, errors.New("invalid token claims")
	}

	expAny, ok := claims["exp"]
	if !ok {
		return dto.AuthResponse{}, errors.New("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return dto.AuthResponse{}, errors.New("invalid expiry type")
	}
	if float64(time.Now().Unix()) > expFloat {
		return dto.AuthResponse{}, errors.New("token expired")
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	universityID, _ := claims["university_id"].(string)
	iat, _ := claims["iat"].(float64)
	if userID == "" || email == "" {
		return dto.AuthResponse{}, errors.New("invalid token claims")
	}

	return dto.AuthResponse{
		UserID:       userID,
		Email:        email,
		Role:         role,
		UniversityID: universityID,
		Expiry:       expFloat,
		Iat:          iat,
	}, nil
}

// AuthContextFromClaims converts verified claims into the explicit actor
// context threaded through service calls.
func AuthContextFromClaims(claims dto.AuthResponse) (domain.AuthContext, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return domain.AuthContext{}, errors.New("invalid user id in token")
	}
	universityID := uuid.Nil
	if claims.UniversityID != "" {
		universityID, err = uuid.Parse(claims.UniversityID)
		if err != nil {
			return domain.AuthContext{}, errors.New("invalid university id in token")
		}
	}
	return domain.AuthContext{
		UserID:       userID,
		Role:         domain.Role(claims.Role),
		UniversityID: universityID,
	}, nil
}

func (a Auth) GetCurrentActor(ctx *fiber.Ctx) (domain.AuthContext, error) {
	v := ctx.Locals("actor")
	actor, ok := v.(domain.AuthContext)
	if !ok || actor.UserID == uuid.Nil {
		return domain.AuthContext{}, errors.New("missing auth user in context")
	}
	return actor, nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}
