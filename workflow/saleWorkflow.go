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

type NewSale struct {
	BranchId   uint            `json:"branch_id" validate:"required"`
	ProductId  uint            `json:"product_id" validate:"required"`
	CustomerId uint            `json:"customer_id"`
	AccountId  uint            `json:"account_id"`
	SaleType   models.SaleType `json:"sale_type" validate:"required,oneof=cash credit"`
	Quantity   decimal.Decimal `json:"quantity" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Discount   decimal.Decimal `json:"discount"`
}

// CreateSale records a sale and all its side effects in one
// transaction: the stock decrement with its adjustment row, the debt
// for a credit sale, the account deposit for a cash sale, and the
// audit activity. A quantity above the available stock fails the whole
// sale.
func CreateSale(ctx context.Context, logger *logrus.Logger, input *NewSale) (*models.Sale, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if !input.Quantity.IsPositive() {
		return nil, errors.New("quantity must be positive")
	}
	if input.SaleType == models.SaleTypeCredit && input.CustomerId == 0 {
		return nil, errors.New("credit sale requires a customer")
	}

	var sale models.Sale

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.Clauses(lockForUpdate()).
			Where("branch_id = ? AND id = ? AND visible = ?", input.BranchId, input.ProductId, true).
			First(&product).Error
		if err != nil {
			config.LogError(logger, "saleWorkflow.go", "CreateSale", "LoadProduct", input, err)
			return err
		}

		if product.Stock.LessThan(input.Quantity) {
			return fmt.Errorf("insufficient stock for %s: have %s, need %s",
				product.Name, product.Stock, input.Quantity)
		}

		stockBefore := product.Stock
		stockAfter := stockBefore.Sub(input.Quantity)

		err = tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			UpdateColumn("stock", stockAfter).Error
		if err != nil {
			config.LogError(logger, "saleWorkflow.go", "CreateSale", "UpdateStock", product.ID, err)
			return err
		}

		userId, _ := utils.GetUserIdFromContext(ctx)
		sale = models.Sale{
			BranchId:    input.BranchId,
			ProductId:   input.ProductId,
			CustomerId:  input.CustomerId,
			UserId:      userId,
			SaleType:    input.SaleType,
			Quantity:    input.Quantity,
			BuyingPrice: product.BuyingPrice,
			Amount:      input.Amount,
			Discount:    input.Discount,
			Profit:      input.Amount.Sub(input.Quantity.Mul(product.BuyingPrice)),
			Visible:     utils.NewTrue(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			config.LogError(logger, "saleWorkflow.go", "CreateSale", "CreateSale", sale, err)
			return err
		}

		adjustment := models.Adjustment{
			BranchId:       input.BranchId,
			ProductId:      input.ProductId,
			UserId:         userId,
			AdjustmentType: models.AdjustmentTypeDecrease,
			Quantity:       input.Quantity,
			StockBefore:    stockBefore,
			StockAfter:     stockAfter,
			Reason:         fmt.Sprintf("sale #%d", sale.ID),
			Visible:        utils.NewTrue(),
		}
		if err := tx.Create(&adjustment).Error; err != nil {
			config.LogError(logger, "saleWorkflow.go", "CreateSale", "CreateAdjustment", adjustment, err)
			return err
		}

		if input.SaleType == models.SaleTypeCredit {
			debt := models.Debt{
				BranchId:    input.BranchId,
				CustomerId:  input.CustomerId,
				SaleId:      sale.ID,
				DebtType:    models.DebtTypeDebtor,
				TotalAmount: input.Amount,
				PaidAmount:  decimal.Zero,
				Visible:     utils.NewTrue(),
			}
			if err := tx.Create(&debt).Error; err != nil {
				config.LogError(logger, "saleWorkflow.go", "CreateSale", "CreateDebt", debt, err)
				return err
			}
		} else if input.AccountId > 0 {
			if err := models.AdjustAccountBalance(tx, input.BranchId, input.AccountId, input.Amount); err != nil {
				config.LogError(logger, "saleWorkflow.go", "CreateSale", "AdjustAccountBalance", input.AccountId, err)
				return err
			}
			transaction := models.Transaction{
				BranchId:        input.BranchId,
				AccountId:       input.AccountId,
				UserId:          userId,
				TransactionType: models.TransactionTypeDeposit,
				Cause:           models.TransactionCauseAutomatic,
				ReferenceType:   "sale",
				ReferenceId:     sale.ID,
				Amount:          input.Amount,
				Description:     fmt.Sprintf("sale #%d", sale.ID),
				Visible:         utils.NewTrue(),
			}
			if err := tx.Create(&transaction).Error; err != nil {
				config.LogError(logger, "saleWorkflow.go", "CreateSale", "CreateTransaction", transaction, err)
				return err
			}
		}

		return RecordActivity(ctx, tx, logger, input.BranchId, "sales", models.ActivityTypeCreate,
			fmt.Sprintf("sold %s of product %d for %s", input.Quantity, input.ProductId, utils.FormatAmount(input.Amount)))
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

// VoidSale reverses a sale: the row is hidden, stock is returned with
// a matching adjustment, and a sale-linked debt is hidden with it.
func VoidSale(ctx context.Context, logger *logrus.Logger, branchId uint, saleId uint) error {
	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		err := tx.Clauses(lockForUpdate()).
			Where("branch_id = ? AND id = ? AND visible = ?", branchId, saleId, true).
			First(&sale).Error
		if err != nil {
			config.LogError(logger, "saleWorkflow.go", "VoidSale", "LoadSale", saleId, err)
			return err
		}

		var product models.Product
		err = tx.Clauses(lockForUpdate()).
			Where("branch_id = ? AND id = ?", branchId, sale.ProductId).
			First(&product).Error
		if err != nil {
			config.LogError(logger, "saleWorkflow.go", "VoidSale", "LoadProduct", sale.ProductId, err)
			return err
		}

		stockBefore := product.Stock
		stockAfter := stockBefore.Add(sale.Quantity)

		err = tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			UpdateColumn("stock", stockAfter).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Sale{}).
			Where("id = ?", sale.ID).
			UpdateColumn("visible", false).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Debt{}).
			Where("branch_id = ? AND sale_id = ?", branchId, sale.ID).
			UpdateColumn("visible", false).Error
		if err != nil {
			return err
		}

		// Automatic ledger lines come back out of the account and are
		// hidden alongside the sale.
		var transactions []models.Transaction
		err = tx.Where("branch_id = ? AND reference_type = ? AND reference_id = ? AND visible = ?",
			branchId, "sale", sale.ID, true).
			Find(&transactions).Error
		if err != nil {
			return err
		}
		for _, transaction := range transactions {
			if transaction.TransactionType == models.TransactionTypeDeposit {
				if err := models.AdjustAccountBalance(tx, branchId, transaction.AccountId, transaction.Amount.Neg()); err != nil {
					return err
				}
			}
			err = tx.Model(&models.Transaction{}).
				Where("id = ?", transaction.ID).
				UpdateColumn("visible", false).Error
			if err != nil {
				return err
			}
		}

		userId, _ := utils.GetUserIdFromContext(ctx)
		adjustment := models.Adjustment{
			BranchId:       branchId,
			ProductId:      sale.ProductId,
			UserId:         userId,
			AdjustmentType: models.AdjustmentTypeIncrease,
			Quantity:       sale.Quantity,
			StockBefore:    stockBefore,
			StockAfter:     stockAfter,
			Reason:         fmt.Sprintf("void sale #%d", sale.ID),
			Visible:        utils.NewTrue(),
		}
		if err := tx.Create(&adjustment).Error; err != nil {
			return err
		}

		return RecordActivity(ctx, tx, logger, branchId, "sales", models.ActivityTypeDelete,
			fmt.Sprintf("voided sale #%d", sale.ID))
	})
}
