package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrOrderAccessDenied = errors.New("order belongs to another user")
)

type OrderService interface {
	Checkout(userID uint) (*model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
	GetOrderByID(userID, orderID uint) (*model.Order, error)
	CancelOrder(userID, orderID uint) error
	DeleteOrder(orderID uint) error
	ExpirePendingOrders(olderThan time.Duration) (int64, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	db        *gorm.DB
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	db *gorm.DB,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		db:        db,
	}
}

// Checkout turns the user's cart into an order in one transaction. Each
// item snapshots the product's current price as price_at_purchase, stock
// is decremented, and the cart is cleared. The snapshot never changes
// afterwards, whatever happens to the product row.
func (s *orderService) Checkout(userID uint) (*model.Order, error) {
	logger.Info("Creating order from cart", map[string]interface{}{
		"user_id": userID,
	})

	cartItems, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch cart items", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if len(cartItems) == 0 {
		logger.Warn("Cannot create order: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during order creation, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"user_id": userID,
			})
			panic(r)
		}
	}()

	totalAmount := decimal.Zero
	orderItems := make([]model.OrderItem, 0, len(cartItems))

	for _, cartItem := range cartItems {
		var product model.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, cartItem.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Product not found during order creation", map[string]interface{}{
					"user_id":    userID,
					"product_id": cartItem.ProductID,
				})
				return nil, ErrProductNotFound
			}
			logger.Error("Failed to fetch product during order creation", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": cartItem.ProductID,
			})
			return nil, err
		}

		if product.StockQuantity < cartItem.Quantity {
			tx.Rollback()
			logger.Warn("Insufficient stock for order", map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
				"requested":  cartItem.Quantity,
				"available":  product.StockQuantity,
			})
			return nil, ErrInsufficientStock
		}

		if err := tx.Model(&model.Product{}).Where("id = ?", product.ID).
			Update("stock_quantity", gorm.Expr("stock_quantity - ?", cartItem.Quantity)).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to decrement stock", err, map[string]interface{}{
				"product_id": product.ID,
			})
			return nil, err
		}

		productID := product.ID
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
		totalAmount = totalAmount.Add(lineTotal)

		orderItems = append(orderItems, model.OrderItem{
			ProductID:       &productID,
			Quantity:        cartItem.Quantity,
			PriceAtPurchase: product.Price,
		})
	}

	order := &model.Order{
		UserID:      &userID,
		Status:      model.OrderStatusPending,
		TotalAmount: totalAmount,
		Items:       orderItems,
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to clear cart after order creation", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit order transaction", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Order created from cart", map[string]interface{}{
		"order_id":     order.ID,
		"user_id":      userID,
		"item_count":   len(order.Items),
		"total_amount": order.TotalAmount.String(),
	})
	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(userID, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if order.UserID == nil || *order.UserID != userID {
		logger.Warn("Order access denied", map[string]interface{}{
			"user_id":  userID,
			"order_id": orderID,
		})
		return nil, ErrOrderAccessDenied
	}
	return order, nil
}

// CancelOrder cancels a pending order. Orders that have moved past
// pending cannot be cancelled through this path.
func (s *orderService) CancelOrder(userID, orderID uint) error {
	order, err := s.GetOrderByID(userID, orderID)
	if err != nil {
		return err
	}

	if order.Status != model.OrderStatusPending {
		logger.Warn("Cannot cancel order: not pending", map[string]interface{}{
			"order_id": orderID,
			"status":   order.Status,
		})
		return ErrOrderNotPending
	}

	if err := s.orderRepo.UpdateStatus(orderID, model.OrderStatusCancelled); err != nil {
		return err
	}

	logger.Info("Order cancelled", map[string]interface{}{
		"order_id": orderID,
	})
	return nil
}

// DeleteOrder removes an order outright (admin path); its items and
// payment cascade with it.
func (s *orderService) DeleteOrder(orderID uint) error {
	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.orderRepo.Delete(orderID)
}

// ExpirePendingOrders cancels pending orders older than the given age.
// Called periodically by the scheduler.
func (s *orderService) ExpirePendingOrders(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	count, err := s.orderRepo.CancelPendingBefore(cutoff)
	if err != nil {
		logger.Error("Failed to expire pending orders", err, map[string]interface{}{
			"cutoff": cutoff,
		})
		return 0, err
	}

	if count > 0 {
		logger.Info("Expired stale pending orders", map[string]interface{}{
			"count":  count,
			"cutoff": cutoff,
		})
	}
	return count, nil
}
