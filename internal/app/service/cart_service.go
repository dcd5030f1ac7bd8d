package service

import (
	"errors"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartAccessDenied = errors.New("cart item belongs to another user")
)

type CartService interface {
	AddItem(userID, productID uint, quantity int) (*model.CartItem, error)
	GetCart(userID uint) ([]model.CartItem, error)
	UpdateQuantity(userID, itemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(userID, itemID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts a product in the user's cart. Adding a product already in
// the cart bumps the existing row's quantity instead of inserting a second
// row.
func (s *cartService) AddItem(userID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cart add rejected: product not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if err := s.cartRepo.UpdateQuantity(existing.ID, newQuantity); err != nil {
			return nil, err
		}
		logger.Info("Cart item quantity increased", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": existing.ID,
			"quantity":     newQuantity,
		})
		return s.cartRepo.FindByID(existing.ID)
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}

	logger.Info("Cart item added", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": item.ID,
		"product_id":   productID,
	})
	return s.cartRepo.FindByID(item.ID)
}

func (s *cartService) GetCart(userID uint) ([]model.CartItem, error) {
	items, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return items, nil
}

func (s *cartService) UpdateQuantity(userID, itemID uint, quantity int) (*model.CartItem, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.FindByID(item.ID)
}

func (s *cartService) RemoveItem(userID, itemID uint) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(item.ID)
}

func (s *cartService) ownedItem(userID, itemID uint) (*model.CartItem, error) {
	item, err := s.cartRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		logger.Warn("Cart access denied", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": itemID,
		})
		return nil, ErrCartAccessDenied
	}
	return item, nil
}
