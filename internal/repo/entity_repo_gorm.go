package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Teckas-Technologies/spring-crud/internal/domain"
)

type EntityRepo struct{ db *gorm.DB }

func NewEntityRepo(db *gorm.DB) *EntityRepo { return &EntityRepo{db: db} }

func (r *EntityRepo) Create(ctx context.Context, e *domain.Entity) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EntityRepo) FindByID(ctx context.Context, id uint64) (*domain.Entity, error) {
	var e domain.Entity
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

// FindPage 按已解析好的查询取一页；越界页返回空列表而不是错误
func (r *EntityRepo) FindPage(ctx context.Context, q domain.EntityQuery) ([]domain.Entity, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Entity{})
	switch {
	case q.Type != "":
		tx = tx.Where("entity_type = ?", q.Type)
	case q.Name != "":
		// LOWER + LIKE 在 mysql/postgres/sqlite 下行为一致
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Name)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	entities := make([]domain.Entity, 0, q.Size)
	err := tx.Order(q.SortColumn + " asc").
		Offset(q.Page * q.Size).
		Limit(q.Size).
		Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *EntityRepo) Save(ctx context.Context, e *domain.Entity) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EntityRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.Entity{}, "id = ?", id).Error
}
