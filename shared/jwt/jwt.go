package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/whisper-dev/whisper/shared/domain"
	internal_errors "github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/logger"
)

// JwtService signs the persisted current-user record so a tampered
// local storage entry is rejected on restore.
type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
	UserFromToken(jwtStr string) (*domain.User, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

var errInvalidClaims = &internal_errors.ErrorWithStatusCode{Message: "Invalid session claims", StatusCode: http.StatusUnauthorized}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["display_name"] = user.DisplayName
	claims["role"] = string(user.Role)
	claims["created_at"] = user.CreatedAt.Unix()
	if user.Avatar != "" {
		claims["avatar"] = user.Avatar
	}
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign session token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("session token rejected", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return token, nil
}

func (j *Jwt) UserFromToken(jwtStr string) (*domain.User, error) {
	token, err := j.DecodeToken(jwtStr)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, errInvalidClaims
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, errInvalidClaims
	}
	displayName, ok := claims["display_name"].(string)
	if !ok {
		return nil, errInvalidClaims
	}
	role, ok := claims["role"].(string)
	if !ok || !domain.Role(role).Valid() {
		return nil, errInvalidClaims
	}
	createdAt, ok := claims["created_at"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}
	avatar, _ := claims["avatar"].(string)

	return &domain.User{
		Id:          uid,
		Username:    username,
		DisplayName: displayName,
		Role:        domain.Role(role),
		Avatar:      avatar,
		CreatedAt:   time.Unix(int64(createdAt), 0),
	}, nil
}
