package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Teckas-Technologies/spring-crud/internal/domain"
)

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Add 持久化后回填生成的 id 和时间戳
func (s *UserService) Add(ctx context.Context, in *domain.UserInput) (*domain.User, error) {
	u := &domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user added", zap.Uint64("id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id uint64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user not found with id: %d: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, pageNo, pageSize int) (*domain.PageResponse, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("pageSize must be positive: %w", domain.ErrInvalidArgument)
	}
	users, total, err := s.users.FindPage(ctx, pageNo, pageSize)
	if err != nil {
		return nil, err
	}
	return &domain.PageResponse{
		Data:       users,
		PageNumber: pageNo,
		PageSize:   pageSize,
		TotalPages: domain.TotalPages(total, pageSize),
	}, nil
}

// Update 先显式加载，缺失立刻 404，不做延迟失败；id/createdAt 不可变
func (s *UserService) Update(ctx context.Context, id uint64, in *domain.UserInput) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user not found with id: %d: %w", id, domain.ErrNotFound)
	}
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = in.Email
	if err := s.users.Save(ctx, u); err != nil {
		return err
	}
	s.log.Info("user updated", zap.Uint64("id", id))
	return nil
}

// Delete 先查存在性，缺失按 404 处理
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		s.log.Warn("user not found", zap.Uint64("id", id))
		return fmt.Errorf("user not found with id: %d: %w", id, domain.ErrNotFound)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Uint64("id", id))
	return nil
}
