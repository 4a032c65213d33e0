package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
	"github.com/hekimalabs/smas_backend/utils"
)

type NewPurchase struct {
	BranchId     uint            `json:"branch_id" validate:"required"`
	ProductId    uint            `json:"product_id" validate:"required"`
	SupplierName string          `json:"supplier_name"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Paid         *bool           `json:"paid"`
}

// CreatePurchase receives stock: the purchase row, the stock increment
// with its adjustment, the new buying price on the product, and the
// audit activity all commit together. An unpaid purchase later feeds
// the unpaid reminders.
func CreatePurchase(ctx context.Context, logger *logrus.Logger, input *NewPurchase) (*models.Purchase, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if !input.Quantity.IsPositive() {
		return nil, errors.New("quantity must be positive")
	}

	var purchase models.Purchase

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.Clauses(lockForUpdate()).
			Where("branch_id = ? AND id = ? AND visible = ?", input.BranchId, input.ProductId, true).
			First(&product).Error
		if err != nil {
			config.LogError(logger, "purchaseWorkflow.go", "CreatePurchase", "LoadProduct", input, err)
			return err
		}

		stockBefore := product.Stock
		stockAfter := stockBefore.Add(input.Quantity)

		updates := map[string]interface{}{"stock": stockAfter}
		if input.BuyingPrice.IsPositive() {
			updates["buying_price"] = input.BuyingPrice
		}
		err = tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			UpdateColumns(updates).Error
		if err != nil {
			config.LogError(logger, "purchaseWorkflow.go", "CreatePurchase", "UpdateStock", product.ID, err)
			return err
		}

		paid := input.Paid
		if paid == nil {
			paid = utils.NewTrue()
		}

		purchase = models.Purchase{
			BranchId:     input.BranchId,
			ProductId:    input.ProductId,
			SupplierName: input.SupplierName,
			Quantity:     input.Quantity,
			BuyingPrice:  input.BuyingPrice,
			TotalAmount:  input.TotalAmount,
			Paid:         paid,
			Visible:      utils.NewTrue(),
		}
		if err := tx.Create(&purchase).Error; err != nil {
			config.LogError(logger, "purchaseWorkflow.go", "CreatePurchase", "CreatePurchase", purchase, err)
			return err
		}

		userId, _ := utils.GetUserIdFromContext(ctx)
		adjustment := models.Adjustment{
			BranchId:       input.BranchId,
			ProductId:      input.ProductId,
			UserId:         userId,
			AdjustmentType: models.AdjustmentTypeIncrease,
			Quantity:       input.Quantity,
			StockBefore:    stockBefore,
			StockAfter:     stockAfter,
			Reason:         fmt.Sprintf("purchase #%d", purchase.ID),
			Visible:        utils.NewTrue(),
		}
		if err := tx.Create(&adjustment).Error; err != nil {
			config.LogError(logger, "purchaseWorkflow.go", "CreatePurchase", "CreateAdjustment", adjustment, err)
			return err
		}

		return RecordActivity(ctx, tx, logger, input.BranchId, "purchases", models.ActivityTypeCreate,
			fmt.Sprintf("purchased %s of product %d", input.Quantity, input.ProductId))
	})
	if err != nil {
		return nil, err
	}

	return &purchase, nil
}

// VoidPurchase reverses a received purchase: the row is hidden and the
// stock it added is taken back out with a matching adjustment. Stock
// already sold since the purchase cannot be taken back, so the reversal
// fails instead of driving stock negative.
func VoidPurchase(ctx context.Context, logger *logrus.Logger, branchId uint, purchaseId uint) error {
	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchase models.Purchase
		err := tx.Clauses(lockForUpdate()).
			Where("branch_id = ? AND id = ? AND visible = ?", branchId, purchaseId, true).
			First(&purchase).Error
		if err != nil {
			config.LogError(logger, "purchaseWorkflow.go", "VoidPurchase", "LoadPurchase", purchaseId, err)
			return err
		}

		var product models.Product
		err = tx.Clauses(lockForUpdate()).
			Where("branch_id = ? AND id = ?", branchId, purchase.ProductId).
			First(&product).Error
		if err != nil {
			config.LogError(logger, "purchaseWorkflow.go", "VoidPurchase", "LoadProduct", purchase.ProductId, err)
			return err
		}

		if product.Stock.LessThan(purchase.Quantity) {
			return fmt.Errorf("cannot void purchase #%d: only %s of %s left in stock",
				purchase.ID, product.Stock, product.Name)
		}

		stockBefore := product.Stock
		stockAfter := stockBefore.Sub(purchase.Quantity)

		err = tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			UpdateColumn("stock", stockAfter).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Purchase{}).
			Where("id = ?", purchase.ID).
			UpdateColumn("visible", false).Error
		if err != nil {
			return err
		}

		userId, _ := utils.GetUserIdFromContext(ctx)
		adjustment := models.Adjustment{
			BranchId:       branchId,
			ProductId:      purchase.ProductId,
			UserId:         userId,
			AdjustmentType: models.AdjustmentTypeDecrease,
			Quantity:       purchase.Quantity,
			StockBefore:    stockBefore,
			StockAfter:     stockAfter,
			Reason:         fmt.Sprintf("void purchase #%d", purchase.ID),
			Visible:        utils.NewTrue(),
		}
		if err := tx.Create(&adjustment).Error; err != nil {
			return err
		}

		return RecordActivity(ctx, tx, logger, branchId, "purchases", models.ActivityTypeDelete,
			fmt.Sprintf("voided purchase #%d", purchase.ID))
	})
}
