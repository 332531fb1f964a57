package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"physiodesk/internal/delivery/dto"
	"physiodesk/internal/domain/entity"
	"physiodesk/internal/domain/repository"
	"physiodesk/internal/service"
	"physiodesk/pkg/jwt"
	"physiodesk/pkg/objectid"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid or expired verification code")
	ErrInvalidOldPassword = errors.New("old password is incorrect")
)

type AuthUsecase interface {
	RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) error
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	otpRepo     repository.OTPRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	mailer      service.Mailer
	otpExpiry   time.Duration
	now         func() time.Time
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	mailer service.Mailer,
	otpExpiry time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		mailer:      mailer,
		otpExpiry:   otpExpiry,
		now:         time.Now,
	}
}

// RequestOTP generates and emails a verification code. Registration codes
// are refused for already-registered addresses; reset codes require one.
func (u *authUsecase) RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) error {
	email := strings.ToLower(req.Email)
	purpose := req.Purpose
	if purpose == "" {
		purpose = entity.OTPPurposeRegister
	}

	user, err := u.userRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if purpose == entity.OTPPurposeRegister && user != nil {
		return ErrEmailAlreadyExists
	}
	if purpose == entity.OTPPurposeReset && user == nil {
		return ErrUserNotFound
	}

	code, err := generateOTPCode()
	if err != nil {
		u.log.Warnf("Failed to generate OTP code: %+v", err)
		return err
	}

	otp := &entity.OTPCode{
		ID:        objectid.New(),
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: u.now().Add(u.otpExpiry),
	}

	if err := u.otpRepo.Create(ctx, u.db, otp); err != nil {
		u.log.Warnf("Failed to store OTP code: %+v", err)
		return err
	}

	if err := u.mailer.SendOTP(email, code, purpose); err != nil {
		u.log.Warnf("Failed to send OTP email: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(req.Email)

	otp, err := u.otpRepo.FindValid(ctx, u.db, email, req.OTP, entity.OTPPurposeRegister, u.now())
	if err != nil {
		u.log.Warnf("Failed to look up OTP code: %+v", err)
		return nil, err
	}
	if otp == nil {
		return nil, ErrInvalidOTP
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		ID:       objectid.New(),
		Email:    email,
		Phone:    req.Phone,
		Password: string(hashedPassword),
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.otpRepo.MarkUsed(ctx, tx, otp.ID); err != nil {
		u.log.Warnf("Failed to consume OTP code: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return userToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user.ID, user.Email)
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accessPattern := fmt.Sprintf("access_token:*:%s", accessTokenID)
	refreshPattern := fmt.Sprintf("refresh_token:*:%s", refreshTokenID)

	for _, pattern := range []string{accessPattern, refreshPattern} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single-use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return userToResponse(user), nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	updated := false

	if req.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrInvalidOldPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
		updated = true
	}

	if req.Phone != nil {
		user.Phone = *req.Phone
		updated = true
	}

	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
		updated = true
	}

	if !updated {
		return userToResponse(user), nil
	}

	if err := u.userRepo.Update(ctx, u.db, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	return userToResponse(user), nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	return u.RequestOTP(ctx, &dto.RequestOTPRequest{
		Email:   req.Email,
		Purpose: entity.OTPPurposeReset,
	})
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	email := strings.ToLower(req.Email)

	otp, err := u.otpRepo.FindValid(ctx, u.db, email, req.OTP, entity.OTPPurposeReset, u.now())
	if err != nil {
		u.log.Warnf("Failed to look up OTP code: %+v", err)
		return err
	}
	if otp == nil {
		return ErrInvalidOTP
	}

	user, err := u.userRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user.Password = string(hashedPassword)
	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	if err := u.otpRepo.MarkUsed(ctx, tx, otp.ID); err != nil {
		u.log.Warnf("Failed to consume OTP code: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// Force re-authentication everywhere after a password reset.
	if err := u.revokeAllUserTokens(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke tokens after password reset: %+v", err)
	}

	return nil
}

// issueTokens generates an access/refresh pair and records both in Redis so
// they can be revoked.
func (u *authUsecase) issueTokens(ctx context.Context, userID, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) revokeAllUserTokens(ctx context.Context, userID string) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", userID),
		fmt.Sprintf("refresh_token:%s:*", userID),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func userToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Phone:        user.Phone,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// generateOTPCode produces a 6-digit numeric code from crypto/rand.
func generateOTPCode() (string, error) {
	const digits = "0123456789"
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = digits[int(b[i])%len(digits)]
	}
	return string(b), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
