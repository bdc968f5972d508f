package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrZoneNameRequired     = fmt.Errorf("delivery zone name is required")
	ErrNegativePrice        = fmt.Errorf("price must not be negative")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPriceUnit     = fmt.Errorf("invalid price unit")
	ErrInvalidUnitAmount    = fmt.Errorf("price unit amount must be positive")
	ErrInvalidQuantity      = fmt.Errorf("invalid quantity")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImage              = fmt.Errorf("no image provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")

	// Состояние корзины
	ErrEmptyCart = fmt.Errorf("cart is empty")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrDispatchFailed      = fmt.Errorf("order dispatch failed")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
