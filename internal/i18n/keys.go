// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Service
	KeyServiceUnavailable = "service.unavailable"
	KeyRateLimited        = "service.rate_limited"
	KeyInternalError      = "service.internal_error"
	KeySeedCompleted      = "seed.completed"

	// Catalog
	KeyProductCreated  = "product.created"
	KeyProductNotFound = "product.not_found"
	KeyVendorCreated   = "vendor.created"
	KeyVendorNotFound  = "vendor.not_found"
	KeyReviewCreated   = "review.created"
	KeyOrderCreated    = "order.created"

	// Validation
	KeyValidationInvalid = "validation.invalid"
	KeyValidationBody    = "validation.invalid_body"
)
