package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
}

// Provider is the narrow read interface other packages depend on.
type Provider interface {
	GetCurrentUser(ctx context.Context) (User, error)
}

type UserServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (u *UserServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.GetUser(ctx, userId)
}

func (u *UserServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return u.repo.GetUserByUid(ctx, uid)
}

func (u *UserServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	if user.Uid == "" {
		user.Uid = uuid.NewString()
	}
	userId, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = userId
	return user, nil
}

func (u *UserServiceImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.UpdateUser(ctx, userId, user)
}
