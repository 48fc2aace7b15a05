package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRequestID       = "request-id"
	FieldRequestBody     = "request-body"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldChatID          = "chat-id"

	FieldTitle         = "title"
	FieldCost          = "cost"
	FieldQuantity      = "quantity"
	FieldUnit          = "unit"
	FieldMultiplier    = "multiplier"
	FieldScale         = "scale"
	FieldCanonicalUnit = "canonical-unit"
	FieldMajor         = "major"
	FieldMinor         = "minor"
	FieldRendered      = "rendered"
	FieldCardID        = "card-id"
)
