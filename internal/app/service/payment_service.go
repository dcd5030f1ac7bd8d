package service

import (
	"errors"
	"fmt"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/repository"
	apperrors "github.com/bottic/shop-backend/internal/errors"
	"github.com/bottic/shop-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentExists   = errors.New("payment already exists for order")
	ErrOrderNotPayable = errors.New("order is not payable")
)

type PaymentService interface {
	CreatePayment(userID, orderID uint, method model.PaymentMethod) (*model.Payment, error)
	GetPaymentByOrderID(userID, orderID uint) (*model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	db          *gorm.DB
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	db *gorm.DB,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		db:          db,
	}
}

// CreatePayment records a payment against a pending order. The amount is
// always taken from the order total, never from the caller. The payment
// insert and the paid-status update happen in one transaction, so an
// order can never carry a success payment while still pending. Exactly
// one payment per order, backed by the unique index on order_id.
func (s *paymentService) CreatePayment(userID, orderID uint, method model.PaymentMethod) (*model.Payment, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var order model.Order
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, orderID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order for payment", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if order.UserID == nil || *order.UserID != userID {
		tx.Rollback()
		return nil, ErrOrderAccessDenied
	}

	if order.Status != model.OrderStatusPending {
		tx.Rollback()
		logger.Warn("Cannot pay order: not pending", map[string]interface{}{
			"order_id": orderID,
			"status":   order.Status,
		})
		return nil, ErrOrderNotPayable
	}

	transactionID := uuid.NewString()
	payment := &model.Payment{
		OrderID:       orderID,
		Amount:        order.TotalAmount,
		Status:        model.PaymentStatusSuccess,
		Method:        method,
		TransactionID: &transactionID,
	}

	if err := tx.Create(payment).Error; err != nil {
		tx.Rollback()
		if apperrors.IsUniqueViolation(err) {
			return nil, ErrPaymentExists
		}
		logger.Error("Failed to create payment", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if err := tx.Model(&model.Order{}).Where("id = ?", orderID).
		Update("status", model.OrderStatusPaid).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to mark order paid", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit payment transaction", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	logger.Info("Payment recorded", map[string]interface{}{
		"payment_id":     payment.ID,
		"order_id":       orderID,
		"amount":         payment.Amount.String(),
		"method":         method,
		"transaction_id": transactionID,
	})
	return payment, nil
}

func (s *paymentService) GetPaymentByOrderID(userID, orderID uint) (*model.Payment, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID == nil || *order.UserID != userID {
		return nil, ErrOrderAccessDenied
	}

	payment, err := s.paymentRepo.FindByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}
