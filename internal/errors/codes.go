package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// Clients map these codes to their own messages.

const (
	// Authentication (AUTH_)
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// Authorization (AUTHZ_)
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"

	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Resources (RESOURCE_)
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Catalog (PRODUCT_ / CATEGORY_)
	ProductNotFound  = "PRODUCT_NOT_FOUND"
	ProductSKUExists = "PRODUCT_SKU_EXISTS"
	CategoryNotFound = "CATEGORY_NOT_FOUND"
	CategoryExists   = "CATEGORY_NAME_EXISTS"

	// Cart / orders (CART_ / ORDER_)
	CartItemNotFound  = "CART_ITEM_NOT_FOUND"
	CartEmpty         = "CART_EMPTY"
	OrderNotFound     = "ORDER_NOT_FOUND"
	OrderNotPending   = "ORDER_NOT_PENDING"
	InsufficientStock = "ORDER_INSUFFICIENT_STOCK"

	// Payments (PAYMENT_)
	PaymentNotFound      = "PAYMENT_NOT_FOUND"
	PaymentAlreadyExists = "PAYMENT_ALREADY_EXISTS"

	// Reviews / users (REVIEW_ / USER_)
	ReviewNotFound    = "REVIEW_NOT_FOUND"
	UserNotFound      = "USER_NOT_FOUND"
	UserProfileExists = "USER_PROFILE_EXISTS"

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
