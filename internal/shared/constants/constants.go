package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXUserID       = "X-User-Id"
	HeaderXUserRole     = "X-User-Role"
	HeaderStripeSig     = "Stripe-Signature"

	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyActor     = "actor"
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	// Number prefixes
	OrderNumberPrefix  = "ORD"
	TicketNumberPrefix = "TKT"

	// Attempts for number-generating inserts and optimistic-lock retries
	MaxNumberAttempts  = 3
	MaxOptimisticRetry = 3

	ErrMsgInternalServerError = "Internal server error occurred"
)
