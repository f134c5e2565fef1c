package domain

import (
	"context"
	"time"
)

type Entity struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	EntityType  string    `gorm:"size:32;not null;index" json:"entityType"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Entity) TableName() string { return "entities" }

type EntityInput struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	EntityType  string `json:"entityType"  binding:"required"`
}

// EntityQuery 由 service 层解析好再下发：Type / Name 互斥，最多只填一个
type EntityQuery struct {
	Page       int
	Size       int
	SortColumn string // "created_at" / "updated_at"
	Type       string // 精确匹配
	Name       string // 子串，不区分大小写
}

type EntityRepository interface {
	Create(ctx context.Context, e *Entity) error
	// FindByID 查不到时返回 (nil, nil)
	FindByID(ctx context.Context, id uint64) (*Entity, error)
	FindPage(ctx context.Context, q EntityQuery) ([]Entity, int64, error)
	Save(ctx context.Context, e *Entity) error
	Delete(ctx context.Context, id uint64) error
}
