package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Teckas-Technologies/spring-crud/internal/domain"
)

type EntityService struct {
	entities domain.EntityRepository
	types    map[string]struct{} // 合法 entityType 集合，来自配置
	log      *zap.Logger
}

func NewEntityService(entities domain.EntityRepository, types []string, log *zap.Logger) *EntityService {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return &EntityService{entities: entities, types: set, log: log}
}

func (s *EntityService) validType(t string) error {
	if _, ok := s.types[t]; !ok {
		return fmt.Errorf("unknown entityType %q: %w", t, domain.ErrInvalidArgument)
	}
	return nil
}

func (s *EntityService) Add(ctx context.Context, in *domain.EntityInput) (*domain.Entity, error) {
	if err := s.validType(in.EntityType); err != nil {
		return nil, err
	}
	e := &domain.Entity{
		Name:        in.Name,
		Description: in.Description,
		EntityType:  in.EntityType,
	}
	if err := s.entities.Create(ctx, e); err != nil {
		return nil, err
	}
	s.log.Info("entity added", zap.Uint64("id", e.ID), zap.String("type", e.EntityType))
	return e, nil
}

func (s *EntityService) Get(ctx context.Context, id uint64) (*domain.Entity, error) {
	e, err := s.entities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("entity not found with id: %d: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

// EntityListParams 列表查询入参，均来自 query string
type EntityListParams struct {
	PageNo     int
	PageSize   int
	Name       string
	SortBy     string
	EntityType string
}

// List 解析排序和筛选后取一页。
// 排序：sortBy 不区分大小写等于 updatedAt 时按 updated_at 升序，
// 其余一律回落到 created_at 升序（未识别的 key 不报错）。
// 筛选：entityType 优先于 name 子串，二者不组合。
func (s *EntityService) List(ctx context.Context, p EntityListParams) (*domain.PageResponse, error) {
	if p.PageSize <= 0 {
		return nil, fmt.Errorf("pageSize must be positive: %w", domain.ErrInvalidArgument)
	}

	q := domain.EntityQuery{
		Page:       p.PageNo,
		Size:       p.PageSize,
		SortColumn: "created_at",
	}
	if strings.EqualFold(p.SortBy, "updatedAt") {
		q.SortColumn = "updated_at"
	}

	switch {
	case p.EntityType != "":
		if err := s.validType(p.EntityType); err != nil {
			return nil, err
		}
		q.Type = p.EntityType
	case p.Name != "":
		q.Name = p.Name
	}

	entities, total, err := s.entities.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}
	s.log.Info("entities listed",
		zap.Int("pageNo", p.PageNo), zap.Int("pageSize", p.PageSize),
		zap.Int64("total", total),
	)
	return &domain.PageResponse{
		Data:       entities,
		PageNumber: p.PageNo,
		PageSize:   p.PageSize,
		TotalPages: domain.TotalPages(total, p.PageSize),
	}, nil
}

func (s *EntityService) Update(ctx context.Context, id uint64, in *domain.EntityInput) error {
	if err := s.validType(in.EntityType); err != nil {
		return err
	}
	e, err := s.entities.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("entity not found with id: %d: %w", id, domain.ErrNotFound)
	}
	e.Name = in.Name
	e.Description = in.Description
	e.EntityType = in.EntityType
	if err := s.entities.Save(ctx, e); err != nil {
		return err
	}
	s.log.Info("entity updated", zap.Uint64("id", id))
	return nil
}

func (s *EntityService) Delete(ctx context.Context, id uint64) error {
	e, err := s.entities.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		s.log.Warn("entity not found", zap.Uint64("id", id))
		return fmt.Errorf("entity not found with id: %d: %w", id, domain.ErrNotFound)
	}
	if err := s.entities.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("entity deleted", zap.Uint64("id", id))
	return nil
}
