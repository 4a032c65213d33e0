package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/utils"
)

type Product struct {
	ID                uint            `gorm:"primary_key" json:"id"`
	BranchId          uint            `gorm:"index;not null" json:"branch_id"`
	Name              string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Unit              string          `gorm:"size:50" json:"unit"`
	Stock             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock"`
	ReorderStockLevel decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"reorder_stock_level"`
	BuyingPrice       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"buying_price"`
	SellingPrice      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"selling_price"`
	Visible           *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	BranchId          uint            `json:"branch_id" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Unit              string          `json:"unit"`
	Stock             decimal.Decimal `json:"stock"`
	ReorderStockLevel decimal.Decimal `json:"reorder_stock_level"`
	BuyingPrice       decimal.Decimal `json:"buying_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	product := Product{
		BranchId:          input.BranchId,
		Name:              input.Name,
		Unit:              input.Unit,
		Stock:             input.Stock,
		ReorderStockLevel: input.ReorderStockLevel,
		BuyingPrice:       input.BuyingPrice,
		SellingPrice:      input.SellingPrice,
		Visible:           utils.NewTrue(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&product).Error
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// ListReorderProducts returns live products at or below their reorder
// level. The stock status SMS is built from this list.
func ListReorderProducts(ctx context.Context, branchId uint) ([]Product, error) {
	var products []Product

	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("branch_id = ? AND visible = ? AND stock <= reorder_stock_level", branchId, true).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}
