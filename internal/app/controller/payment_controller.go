package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bottic/shop-backend/internal/app/dto"
	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/service"
	apperrors "github.com/bottic/shop-backend/internal/errors"
	"github.com/bottic/shop-backend/internal/middleware"
)

type PaymentController struct {
	paymentService service.PaymentService
}

func NewPaymentController(paymentService service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePayment pays for a pending order; the amount is the order total
// POST /api/v1/payments
func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "authentication required")
		return
	}

	var req dto.PaymentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid payment request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid payment input")
		return
	}

	payment, err := ctrl.paymentService.CreatePayment(userID, req.OrderID, model.PaymentMethod(req.Method))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "order not found")
		case errors.Is(err, service.ErrOrderAccessDenied):
			apperrors.Forbidden(c, "order belongs to another user")
		case errors.Is(err, service.ErrOrderNotPayable):
			apperrors.Conflict(c, apperrors.OrderNotPending, "order is not awaiting payment")
		case errors.Is(err, service.ErrPaymentExists) || apperrors.IsUniqueViolation(err):
			apperrors.Conflict(c, apperrors.PaymentAlreadyExists, "order already has a payment")
		default:
			log.Error("Failed to create payment", err, map[string]interface{}{
				"order_id": req.OrderID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create payment")
		}
		return
	}

	log.Info("Payment created", map[string]interface{}{
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded successfully",
		"payment": dto.NewPaymentResponse(payment),
	})
}

// GetPaymentByOrder returns the payment attached to an order
// GET /api/v1/orders/:id/payment
func (ctrl *PaymentController) GetPaymentByOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "authentication required")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid order id")
		return
	}

	payment, err := ctrl.paymentService.GetPaymentByOrderID(userID, uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "order not found")
		case errors.Is(err, service.ErrOrderAccessDenied):
			apperrors.Forbidden(c, "order belongs to another user")
		case errors.Is(err, service.ErrPaymentNotFound):
			apperrors.NotFound(c, apperrors.PaymentNotFound, "order has no payment")
		default:
			log.Error("Failed to fetch payment", err, map[string]interface{}{
				"order_id": orderID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get payment")
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment))
}
