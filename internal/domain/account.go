package domain

import (
	"context"
	"time"
)

// Account 登录凭证（Basic / 表单 / Token 共用），与 User 资源无关
type Account struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Account) TableName() string { return "accounts" }

type AccountRepository interface {
	Create(ctx context.Context, a *Account) error
	// FindByUsername 查不到时返回 (nil, nil)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	Count(ctx context.Context) (int64, error)
}
