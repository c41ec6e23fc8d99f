package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func BuildPair(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, userID int64, username, role string) (*Pair, time.Time, error) {
	accessToken, accessExpireAt, err := Sign(accessSecret, accessTTL, userID, username, role)
	if err != nil {
		return nil, time.Time{}, err
	}

	refreshToken, _, err := Sign(refreshSecret, refreshTTL, userID, username, role)
	if err != nil {
		return nil, time.Time{}, err
	}

	pair := &Pair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}
	return pair, accessExpireAt, nil
}

func Sign(secret string, ttl time.Duration, userID int64, username, role string) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		return "", time.Time{}, errors.New("token ttl must be positive")
	}

	now := time.Now()
	expireAt := now.Add(ttl)
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expireAt, nil
}

func Parse(tokenStr, secret string) (*Claims, error) {
	if tokenStr == "" {
		return nil, errors.New("token is empty")
	}
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
