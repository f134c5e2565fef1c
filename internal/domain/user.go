package domain

import (
	"context"
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"firstName"`
	LastName  string    `gorm:"size:50;not null" json:"lastName"`
	Email     string    `gorm:"size:191;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserInput 请求体，只在边界使用；校验规则走 binding tag
type UserInput struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `json:"lastName"  binding:"required,min=1,max=50"`
	Email     string `json:"email"     binding:"required,email"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// FindByID 查不到时返回 (nil, nil)
	FindByID(ctx context.Context, id uint64) (*User, error)
	FindPage(ctx context.Context, page, size int) ([]User, int64, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint64) error
}
