package services

import (
	"context"
	"errors"

	"go-restaurant-pos/helpers"
	"go-restaurant-pos/models"
	"go-restaurant-pos/repository"
)

type UserService struct {
	users  UserStore
	tokens *helpers.TokenIssuer
}

func NewUserService(users UserStore, tokens *helpers.TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	return user, notFound(err)
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	count, err := s.users.CountByEmailOrPhone(ctx, *user.Email, *user.Phone)
	if err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrDuplicateUser
	}

	password, err := helpers.HashPassword(*user.Password)
	if err != nil {
		return models.User{}, err
	}
	user.Password = &password

	if err := s.users.Insert(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, ErrDuplicateUser
		}
		return models.User{}, err
	}
	token, refreshToken, err := s.tokens.GenerateAllTokens(*user.Email, *user.Name, user.User_id, *user.User_role)
	if err != nil {
		return models.User{}, err
	}
	if err := s.users.UpdateTokens(ctx, user.User_id, token, refreshToken); err != nil {
		return models.User{}, err
	}
	user.Token = &token
	user.Refresh_Token = &refreshToken
	user.Password = nil
	return user, nil
}

func (s *UserService) Login(ctx context.Context, login models.Login) (models.User, error) {
	foundUser, err := s.users.FindByEmail(ctx, login.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return models.User{}, ErrBadCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if foundUser.Password == nil {
		return models.User{}, ErrBadCredentials
	}
	if ok, _ := helpers.VerifyPassword(login.Password, *foundUser.Password); !ok {
		return models.User{}, ErrBadCredentials
	}

	token, refreshToken, err := s.tokens.GenerateAllTokens(*foundUser.Email, *foundUser.Name, foundUser.User_id, *foundUser.User_role)
	if err != nil {
		return models.User{}, err
	}
	if err := s.users.UpdateTokens(ctx, foundUser.User_id, token, refreshToken); err != nil {
		return models.User{}, err
	}
	foundUser.Token = &token
	foundUser.Refresh_Token = &refreshToken
	foundUser.Password = nil
	return foundUser, nil
}
