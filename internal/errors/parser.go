package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the parsed form of a storage error
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a raw storage error into an error code and message
// safe to return to clients. Constraint names from both PostgreSQL and
// SQLite phrasing are recognized, since tests run on SQLite.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "an internal error occurred"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	errLower := strings.ToLower(err.Error())

	switch {
	case isUniqueViolation(errLower):
		return parseUniqueViolation(errLower)
	case isForeignKeyViolation(errLower):
		return ErrorInfo{Code: ResourceNotFound, Message: "referenced record does not exist"}
	case strings.Contains(errLower, "not null") || strings.Contains(errLower, "not-null"):
		return ErrorInfo{Code: ValidationRequired, Message: "a required field is missing"}
	}

	return ErrorInfo{Code: InternalDatabaseError, Message: "a database error occurred"}
}

func isUniqueViolation(errLower string) bool {
	return strings.Contains(errLower, "duplicate key") || // postgres
		strings.Contains(errLower, "unique constraint") ||
		strings.Contains(errLower, "unique failed") // sqlite
}

func isForeignKeyViolation(errLower string) bool {
	return strings.Contains(errLower, "foreign key")
}

func parseUniqueViolation(errLower string) ErrorInfo {
	switch {
	case strings.Contains(errLower, "email"):
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "email is already registered"}
	case strings.Contains(errLower, "sku"):
		return ErrorInfo{Code: ProductSKUExists, Message: "a product with this sku already exists"}
	case strings.Contains(errLower, "transaction_id"):
		return ErrorInfo{Code: PaymentAlreadyExists, Message: "transaction id already recorded"}
	case strings.Contains(errLower, "order_id"):
		return ErrorInfo{Code: PaymentAlreadyExists, Message: "order already has a payment"}
	case strings.Contains(errLower, "categories") || strings.Contains(errLower, "name"):
		return ErrorInfo{Code: CategoryExists, Message: "a category with this name already exists"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "record already exists"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "product"):
		return "product not found"
	case strings.Contains(contextLower, "category"):
		return "category not found"
	case strings.Contains(contextLower, "order"):
		return "order not found"
	case strings.Contains(contextLower, "payment"):
		return "payment not found"
	case strings.Contains(contextLower, "user"):
		return "user not found"
	}
	return "record not found"
}

// ParseAndRespond parses a storage error and writes the JSON response in
// one step. The status code stays as given; only code and message are
// derived from the error.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

// IsUniqueViolation reports whether the error is a unique-constraint failure
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return isUniqueViolation(strings.ToLower(err.Error()))
}
