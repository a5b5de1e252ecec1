package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/dbutil"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/repository"
)

const (
	refreshTokenTTL = 30 * 24 * time.Hour
	accessTokenTTL  = 5 * time.Minute
)

type AuthServicer interface {
	CreateRefreshToken(claims RefreshTokenClaims) (string, error)
	ValidateRefreshToken(tokenString string) (*RefreshTokenClaims, error)
	CreateAccessToken(claims AccessTokenClaims) (string, error)
	ValidateAccessToken(tokenString string) (*AccessTokenClaims, error)
	RegisterUser(ctx context.Context, arg RegisterUserParams) (AuthResult, error)
	LoginUser(ctx context.Context, arg LoginUserParams) (AuthResult, error)
	RotateRefreshToken(ctx context.Context, arg RotateRefreshTokenParams) (TokenPair, error)
	RevokeRefreshToken(ctx context.Context, arg RevokeRefreshTokenParams) error
}

type auth struct {
	configs configs.Configs
}

func NewAuthService(configs configs.Configs) AuthServicer {
	return &auth{
		configs: configs,
	}
}

type TokenType int

const (
	Refresh TokenType = iota
	Access
)

type RefreshTokenClaims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

type AccessTokenClaims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

func (a auth) signingKey(_ *jwt.Token) (interface{}, error) {
	return []byte(a.configs.Env.SecretKey), nil
}

func (a auth) parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(a.configs.Env.OriginURL),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	}
}

func (a auth) CreateRefreshToken(claims RefreshTokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.configs.Env.SecretKey))
}

func (a auth) ValidateRefreshToken(tokenString string) (*RefreshTokenClaims, error) {
	claims := &RefreshTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, a.signingKey, a.parserOptions()...)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid refresh token")
	}

	if claims.Type != Refresh {
		return nil, errors.New("invalid refresh token type")
	}

	return claims, nil
}

func (a auth) CreateAccessToken(claims AccessTokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.configs.Env.SecretKey))
}

func (a auth) ValidateAccessToken(tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, a.signingKey, a.parserOptions()...)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	if claims.Type != Access {
		return nil, errors.New("invalid access token type")
	}

	return claims, nil
}

type TokenPair struct {
	RefreshToken string
	AccessToken  string
}

type AuthResult struct {
	User repository.User
	TokenPair
}

// issueTokens signs a new token pair for userId and stores the refresh token's JTI.
func (a auth) issueTokens(ctx context.Context, qtx *repository.Queries, userId pgtype.UUID, refreshExpiresAt time.Time) (TokenPair, error) {
	now := time.Now()
	refreshTokenId := uuid.New()

	refreshTokenClaims := RefreshTokenClaims{
		Type: Refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        refreshTokenId.String(),
			ExpiresAt: jwt.NewNumericDate(refreshExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    a.configs.Env.OriginURL,
			Subject:   userId.String(),
		},
	}

	refreshToken, err := a.CreateRefreshToken(refreshTokenClaims)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	accessTokenClaims := AccessTokenClaims{
		Type: Access,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    a.configs.Env.OriginURL,
			Subject:   userId.String(),
		},
	}

	accessToken, err := a.CreateAccessToken(accessTokenClaims)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to create access token: %w", err)
	}

	_, err = qtx.InsertUserRefreshToken(ctx, repository.InsertUserRefreshTokenParams{
		ID:        pgtype.UUID{Bytes: refreshTokenId, Valid: true},
		UserID:    userId,
		ExpiresAt: pgtype.Timestamptz{Time: refreshTokenClaims.ExpiresAt.Time, Valid: true},
	})

	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to insert refresh token: %w", err)
	}

	tokenPair := TokenPair{
		RefreshToken: refreshToken,
		AccessToken:  accessToken,
	}

	return tokenPair, nil
}

type RegisterUserParams struct {
	Email    string
	Name     string
	Password string
}

func (a auth) RegisterUser(ctx context.Context, arg RegisterUserParams) (AuthResult, error) {
	hashedPassword, err := argon2id.CreateHash(arg.Password, argon2id.DefaultParams)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	retryableFunc := func(qtx *repository.Queries) (AuthResult, error) {
		user, err := qtx.InsertUser(ctx, repository.InsertUserParams{
			ID:       newUUID(),
			Email:    strings.ToLower(arg.Email),
			Name:     arg.Name,
			Password: hashedPassword,
		})

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return AuthResult{}, fmt.Errorf("%w: %w", ErrEmailTaken, err)
			}
			return AuthResult{}, fmt.Errorf("failed to insert user: %w", err)
		}

		tokenPair, err := a.issueTokens(ctx, qtx, user.ID, time.Now().Add(refreshTokenTTL))
		if err != nil {
			return AuthResult{}, err
		}

		return AuthResult{User: user, TokenPair: tokenPair}, nil
	}

	return dbutil.RetryableTxWithData(ctx, a.configs.Db.Conn, a.configs.Db.Queries, retryableFunc)
}

type LoginUserParams struct {
	Email    string
	Password string
}

func (a auth) LoginUser(ctx context.Context, arg LoginUserParams) (AuthResult, error) {
	user, err := retryutil.RetryWithData(func() (repository.User, error) {
		return a.configs.Db.Queries.SelectUserByEmail(ctx, strings.ToLower(arg.Email))
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("failed to select user: %w", err)
	}

	match, err := argon2id.ComparePasswordAndHash(arg.Password, user.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to compare password: %w", err)
	}

	if !match {
		return AuthResult{}, ErrInvalidCredentials
	}

	tokenPair, err := retryutil.RetryWithData(func() (TokenPair, error) {
		return a.issueTokens(ctx, a.configs.Db.Queries, user.ID, time.Now().Add(refreshTokenTTL))
	})

	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: user, TokenPair: tokenPair}, nil
}

type RotateRefreshTokenParams struct {
	Jti       string
	UserId    string
	ExpiresAt time.Time
}

// RotateRefreshToken revokes the presented refresh token and issues a new pair. The new
// refresh token keeps the expiry of the old one.
func (a auth) RotateRefreshToken(ctx context.Context, arg RotateRefreshTokenParams) (TokenPair, error) {
	oldRefreshTokenId, err := parseUUID(arg.Jti)
	if err != nil {
		return TokenPair{}, err
	}

	userId, err := parseUUID(arg.UserId)
	if err != nil {
		return TokenPair{}, err
	}

	retryableFunc := func(qtx *repository.Queries) (TokenPair, error) {
		_, err := qtx.RevokeUserRefreshToken(ctx, repository.RevokeUserRefreshTokenParams{
			ID:     oldRefreshTokenId,
			UserID: userId,
		})

		if err != nil {
			return TokenPair{}, fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		return a.issueTokens(ctx, qtx, userId, arg.ExpiresAt)
	}

	return dbutil.RetryableTxWithData(ctx, a.configs.Db.Conn, a.configs.Db.Queries, retryableFunc)
}

type RevokeRefreshTokenParams struct {
	Jti    string
	UserId string
}

func (a auth) RevokeRefreshToken(ctx context.Context, arg RevokeRefreshTokenParams) error {
	refreshTokenId, err := parseUUID(arg.Jti)
	if err != nil {
		return err
	}

	userId, err := parseUUID(arg.UserId)
	if err != nil {
		return err
	}

	return retryutil.RetryWithoutData(func() error {
		_, err := a.configs.Db.Queries.RevokeUserRefreshToken(ctx, repository.RevokeUserRefreshTokenParams{
			ID:     refreshTokenId,
			UserID: userId,
		})

		if err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		return nil
	})
}
