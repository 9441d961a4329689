package log

// Common field names for structured logging.
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldPage          = "page"
	FieldPageSize      = "page_size"
	FieldGeneration    = "generation"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldAmountCents   = "amount_cents"
	FieldMonth         = "month"
	FieldYear          = "year"
	FieldCount         = "count"
)

// Components defines standard component names.
const (
	ComponentApp    = "app"
	ComponentAPI    = "api"
	ComponentView   = "view"
	ComponentStore  = "store"
	ComponentExport = "export"
	ComponentRender = "render"
	ComponentConfig = "config"
	ComponentCache  = "cache"
)

// Operations defines standard operation names.
const (
	OpLogin    = "login"
	OpLogout   = "logout"
	OpList     = "list"
	OpFetch    = "fetch"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpExport   = "export"
	OpSnapshot = "snapshot"
)
