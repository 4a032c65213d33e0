package models

import (
	"context"
	"errors"
	"time"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/utils"
)

type Customer struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	BranchId    uint      `gorm:"index;not null" json:"branch_id"`
	Name        string    `gorm:"size:100;not null" json:"name" binding:"required"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Email       string    `gorm:"size:100" json:"email"`
	Visible     *bool     `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCustomer struct {
	BranchId    uint   `json:"branch_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func CreateCustomer(ctx context.Context, input *NewCustomer) (*Customer, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	phone := input.PhoneNumber
	if phone != "" {
		phone = utils.TanzaniaPhone(phone)
		if !utils.ValidatePhoneNumber(phone) {
			return nil, errors.New("invalid phone number")
		}
	}

	customer := Customer{
		BranchId:    input.BranchId,
		Name:        input.Name,
		PhoneNumber: phone,
		Email:       input.Email,
		Visible:     utils.NewTrue(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&customer).Error
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func GetCustomer(ctx context.Context, branchId uint, id uint) (*Customer, error) {
	var customer Customer

	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("branch_id = ? AND id = ?", branchId, id).
		First(&customer).Error
	if err != nil {
		return nil, err
	}

	return &customer, nil
}
