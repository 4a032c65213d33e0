package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/utils"
)

// BranchSettings is stored as a JSON column. OpeningTime and
// ClosingTime use the "HH:MM" form; an empty ClosingTime disables the
// closing-hour reports for the branch.
type BranchSettings struct {
	Notifications []string `json:"notifications"`
	OpeningTime   string   `json:"opening_time"`
	ClosingTime   string   `json:"closing_time"`
}

func (s BranchSettings) HasNotification(key string) bool {
	for _, n := range s.Notifications {
		if n == key {
			return true
		}
	}
	return false
}

type Branch struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	Name        string          `gorm:"index;size:100;not null;unique" json:"name" binding:"required"`
	PhoneNumber string          `gorm:"size:20;not null" json:"phone_number" binding:"required"`
	Region      string          `gorm:"size:100" json:"region"`
	Days        int             `gorm:"not null;default:0" json:"days"`
	Fee         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fee"`
	Vendor      string          `gorm:"size:100" json:"vendor"`
	ApiKey      string          `gorm:"size:255" json:"api_key"`
	Settings    BranchSettings  `gorm:"serializer:json" json:"settings"`
	Visible     *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// SMSConfigured reports whether the branch can receive gateway
// messages at all.
func (b *Branch) SMSConfigured() bool {
	return strings.TrimSpace(b.Vendor) != "" && strings.TrimSpace(b.ApiKey) != ""
}

type NewBranch struct {
	Name        string          `json:"name" validate:"required"`
	PhoneNumber string          `json:"phone_number" validate:"required"`
	Region      string          `json:"region"`
	Days        int             `json:"days"`
	Fee         decimal.Decimal `json:"fee"`
	Vendor      string          `json:"vendor"`
	ApiKey      string          `json:"api_key"`
	Settings    BranchSettings  `json:"settings"`
}

func (input *NewBranch) validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if !utils.ValidatePhoneNumber(utils.TanzaniaPhone(input.PhoneNumber)) {
		return errors.New("invalid phone number")
	}
	return nil
}

func CreateBranch(ctx context.Context, input *NewBranch) (*Branch, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	branch := Branch{
		Name:        input.Name,
		PhoneNumber: utils.TanzaniaPhone(input.PhoneNumber),
		Region:      input.Region,
		Days:        input.Days,
		Fee:         input.Fee,
		Vendor:      input.Vendor,
		ApiKey:      input.ApiKey,
		Settings:    input.Settings,
		Visible:     utils.NewTrue(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&branch).Error
	if err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, errors.New("branch name already exists")
		}
		return nil, err
	}

	return &branch, nil
}

func GetBranch(ctx context.Context, id uint) (*Branch, error) {
	var branch Branch

	db := config.GetDB()
	err := db.WithContext(ctx).Where("id = ?", id).First(&branch).Error
	if err != nil {
		return nil, err
	}

	return &branch, nil
}

// ListVisibleBranches returns every live branch ordered by name. The
// fixed ordering keeps scheduler runs deterministic across replicas.
func ListVisibleBranches(ctx context.Context) ([]Branch, error) {
	var branches []Branch

	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("visible = ?", true).
		Order("name asc").
		Find(&branches).Error
	if err != nil {
		return nil, err
	}

	return branches, nil
}

// ListExpiredBranches returns branches whose subscription ran out at
// least graceDays ago, deleted ones included.
func ListExpiredBranches(ctx context.Context, graceDays int) ([]Branch, error) {
	var branches []Branch

	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("days <= ?", -graceDays).
		Order("name asc").
		Find(&branches).Error
	if err != nil {
		return nil, err
	}

	return branches, nil
}

// DecrementSubscriptionDays takes one day off every live paying
// branch. A single UPDATE keeps the decrement atomic per branch even
// when two replicas race.
func DecrementSubscriptionDays(ctx context.Context) (int64, error) {
	db := config.GetDB()
	result := db.WithContext(ctx).Model(&Branch{}).
		Where("visible = ? AND fee > 0", true).
		UpdateColumn("days", gorm.Expr("days - 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
