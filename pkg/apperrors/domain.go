package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors.

// ErrNotFound converts a repository "record not found" into an AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

// ErrPasswordMismatch - password and confirmation do not match.
var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"validation",
	"Passwords do not match",
	http.StatusBadRequest,
)

// ErrUserAlreadyExists - registration with an already verified email.
// The source behavior reports this as a 400, not a 409.
var ErrUserAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailNotVerified - password matched but the email is not verified yet.
// Distinct from ErrInvalidCredentials so the client can prompt re-verification.
var ErrEmailNotVerified = New(
	CodeEmailNotVerified,
	"auth",
	"Please verify your email to log in.",
	http.StatusUnauthorized,
)

// ErrInvalidOrExpiredToken - verification/reset token unknown or past expiry.
var ErrInvalidOrExpiredToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrNoRefreshToken - refresh cookie absent.
var ErrNoRefreshToken = New(
	CodeUnauthorized,
	"auth",
	"No refresh token",
	http.StatusUnauthorized,
)

// ErrInvalidRefreshToken - refresh token failed signature or expiry check.
var ErrInvalidRefreshToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid refresh token",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyVerified - resend requested for a verified account.
var ErrEmailAlreadyVerified = New(
	CodeConflict,
	"auth",
	"Email is already verified",
	http.StatusBadRequest,
)

// ErrUserNotFound - no account for the given email or id.
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

// --- Orders & payments ---

// ErrOrderNotFound - order id does not resolve.
var ErrOrderNotFound = New(
	CodeNotFound,
	"order",
	"Order not found",
	http.StatusNotFound,
)

// ErrNoOrderItems - checkout submitted with an empty item list.
var ErrNoOrderItems = New(
	CodeValidationFailed,
	"order",
	"No order items",
	http.StatusBadRequest,
)

// ErrInvalidOrderStatus - status value outside the order status enum.
var ErrInvalidOrderStatus = New(
	CodeInvalidStatus,
	"order",
	"Invalid order status",
	http.StatusBadRequest,
)

// ErrPaymentNotSuccessful - the gateway reports a non-success intent status.
var ErrPaymentNotSuccessful = New(
	CodePaymentNotSuccessful,
	"payment",
	"Payment not successful",
	http.StatusBadRequest,
)

// ErrPaymentProvider - the payment gateway call itself failed.
func ErrPaymentProvider(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "payment", "Payment provider error", http.StatusInternalServerError)
}

// --- Products ---

// ErrProductNotFound - product id does not resolve.
var ErrProductNotFound = New(
	CodeNotFound,
	"product",
	"Product not found.",
	http.StatusNotFound,
)

// ErrNoCategoryProducts - category lookup returned nothing.
var ErrNoCategoryProducts = New(
	CodeNotFound,
	"product",
	"No products found in this category.",
	http.StatusNotFound,
)
