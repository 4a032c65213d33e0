package workflow

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hekimalabs/smas_backend/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestCreateSaleRejectsBadInput(t *testing.T) {
	logger := quietLogger()

	_, err := CreateSale(context.Background(), logger, &NewSale{})
	if err == nil {
		t.Fatal("empty input should fail validation")
	}

	_, err = CreateSale(context.Background(), logger, &NewSale{
		BranchId:  1,
		ProductId: 2,
		SaleType:  models.SaleTypeCash,
		Quantity:  decimal.RequireFromString("-3"),
		Amount:    decimal.RequireFromString("1000"),
	})
	if err == nil {
		t.Fatal("negative quantity should be rejected")
	}
}

func TestCreateSaleCreditRequiresCustomer(t *testing.T) {
	_, err := CreateSale(context.Background(), quietLogger(), &NewSale{
		BranchId:  1,
		ProductId: 2,
		SaleType:  models.SaleTypeCredit,
		Quantity:  decimal.RequireFromString("1"),
		Amount:    decimal.RequireFromString("1000"),
	})
	if err == nil {
		t.Fatal("credit sale without a customer should be rejected")
	}
}

func TestCreatePurchaseRejectsNonPositiveQuantity(t *testing.T) {
	_, err := CreatePurchase(context.Background(), quietLogger(), &NewPurchase{
		BranchId:  1,
		ProductId: 2,
		Quantity:  decimal.Zero,
	})
	if err == nil {
		t.Fatal("zero quantity should be rejected")
	}
}
