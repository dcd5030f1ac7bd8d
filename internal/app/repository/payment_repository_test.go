package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/db"
)

func setupPaymentRepoTest(t *testing.T) (PaymentRepository, *gorm.DB, *model.Order) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	user := &model.User{
		Email:        "payer@example.com",
		PasswordHash: "hashed-password",
		Role:         model.RoleUser,
	}
	require.NoError(t, testDB.Create(user).Error)

	order := &model.Order{
		UserID:      &user.ID,
		TotalAmount: decimal.NewFromFloat(99.90),
	}
	require.NoError(t, testDB.Create(order).Error)

	return NewPaymentRepository(testDB), testDB, order
}

func TestPaymentRepository_CreateAndFindByOrderID(t *testing.T) {
	paymentRepo, _, order := setupPaymentRepoTest(t)

	txID := "tx-abc-123"
	require.NoError(t, paymentRepo.Create(&model.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		Status:        model.PaymentStatusSuccess,
		Method:        model.PaymentMethodCard,
		TransactionID: &txID,
	}))

	payment, err := paymentRepo.FindByOrderID(order.ID)
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(99.90)))
	assert.Equal(t, model.PaymentMethodCard, payment.Method)
	require.NotNil(t, payment.TransactionID)
	assert.Equal(t, "tx-abc-123", *payment.TransactionID)
}

func TestPaymentRepository_OnePaymentPerOrder(t *testing.T) {
	paymentRepo, _, order := setupPaymentRepoTest(t)

	first := "tx-first"
	require.NoError(t, paymentRepo.Create(&model.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		Status:        model.PaymentStatusSuccess,
		Method:        model.PaymentMethodCard,
		TransactionID: &first,
	}))

	second := "tx-second"
	err := paymentRepo.Create(&model.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		Status:        model.PaymentStatusSuccess,
		Method:        model.PaymentMethodPaypal,
		TransactionID: &second,
	})
	require.Error(t, err)
}

func TestPaymentRepository_FindByOrderID_NotFound(t *testing.T) {
	paymentRepo, _, order := setupPaymentRepoTest(t)

	_, err := paymentRepo.FindByOrderID(order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
