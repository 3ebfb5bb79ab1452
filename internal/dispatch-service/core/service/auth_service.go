package service

import (
	"context"
	"errors"
	"fmt"

	"cargo-dispatch/internal/dispatch-service/core/domain/dto"
	"cargo-dispatch/internal/dispatch-service/core/domain/models"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/ports"
	"cargo-dispatch/internal/mylogger"
)

type AuthService struct {
	userRepo ports.IUserRepo
	hasher   *Hasher
	tokens   *TokenService
	mylog    mylogger.Logger
}

func NewAuthService(
	userRepo ports.IUserRepo,
	hasher *Hasher,
	tokens *TokenService,
	mylog mylogger.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mylog:    mylog,
	}
}

// ======================= Register =======================
func (as *AuthService) Register(ctx context.Context, req dto.UserRequest) (dto.AuthResponse, error) {
	mylog := as.mylog.Action("Register")

	if err := validateLogin(req.Login); err != nil {
		return dto.AuthResponse{}, err
	}
	if err := validatePassword(req.Password); err != nil {
		return dto.AuthResponse{}, err
	}

	hashedPassword, err := as.hasher.Hash(req.Password)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Login:        req.Login,
		Role:         models.RoleDriver,
		PasswordHash: hashedPassword,
	}

	id, err := as.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, myerrors.ErrLoginTaken) {
			mylog.Warn("Failed to register, login already taken")
			return dto.AuthResponse{}, err
		}
		mylog.Error("Failed to save user in db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot save user in db: %w", err)
	}

	accessToken, err := as.tokens.Issue(id, req.Login, RegisterTokenTTL)
	if err != nil {
		mylog.Error("Failed to issue jwt token", err)
		return dto.AuthResponse{}, err
	}

	mylog.Info("User registered successfully")
	return dto.AuthResponse{
		Msg:         "User successfully created",
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserLogin:   req.Login,
	}, nil
}

// ======================= Login =======================
func (as *AuthService) Login(ctx context.Context, req dto.UserRequest) (dto.AuthResponse, error) {
	mylog := as.mylog.Action("Login")

	user, err := as.userRepo.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, myerrors.ErrInvalidCredentials) {
			// Unknown login and wrong password are one and the same
			// failure to the caller.
			mylog.Warn("Failed to login, unknown login")
			return dto.AuthResponse{}, err
		}
		mylog.Error("Failed to look up user in db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot look up user in db: %w", err)
	}

	if !as.hasher.Check(user.PasswordHash, req.Password) {
		mylog.Debug("Failed to login, wrong password")
		return dto.AuthResponse{}, myerrors.ErrInvalidCredentials
	}

	accessToken, err := as.tokens.Issue(user.ID, user.Login, LoginTokenTTL)
	if err != nil {
		mylog.Error("Failed to issue jwt token", err)
		return dto.AuthResponse{}, err
	}

	mylog.Info("User login successfully")
	return dto.AuthResponse{
		Msg:         "Authorization successful",
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserLogin:   user.Login,
	}, nil
}
