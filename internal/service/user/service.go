package user

import (
	"context"
	"fmt"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*model.UserListItem, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, req *model.UpsertUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, id string, req *model.UpsertUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type Service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.UserListItem, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, req *model.UpsertUserRequest) (*model.User, error) {
	return s.repo.Create(ctx, req)
}

func (s *Service) UpdateUser(ctx context.Context, id string, req *model.UpsertUserRequest) (*model.User, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
