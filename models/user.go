package models

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/utils"
)

type User struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	BranchId    uint      `gorm:"index" json:"branch_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Username    string    `gorm:"size:100;not null;unique" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Role        string    `gorm:"size:50;not null;default:'staff'" json:"role"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Visible     *bool     `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

const RoleAdmin = "admin"

func GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User

	db := config.GetDB()
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// EnsureSystemAccount creates the platform operator account once. The
// account owns no branch and carries the admin role.
func EnsureSystemAccount(ctx context.Context, username string, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	db := config.GetDB()

	var existing User
	err := db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := User{
		Name:     "System",
		Username: username,
		Password: string(hashed),
		Role:     RoleAdmin,
		Visible:  utils.NewTrue(),
	}

	err = db.WithContext(ctx).Create(&user).Error
	if err != nil {
		if utils.IsDuplicateKeyError(err) {
			return GetUserByUsername(ctx, username)
		}
		return nil, err
	}

	return &user, nil
}
