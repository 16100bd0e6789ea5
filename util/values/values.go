package values

// Response status strings returned in the ServerResponse envelope.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
)

// Message codes surfaced to the client as transient messages.
const (
	MsgErrEnterTitle     = "err-enter-title"
	MsgErrSelectLocation = "err-select-location"
	MsgReminderSaved     = "reminder-saved"
	MsgReminderUpdated   = "reminder-updated"
	MsgReminderDeleted   = "reminder-deleted"
	MsgGeofenceFailed    = "geofence-registration-failed"
)

const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-Id"
	HeaderUserID        = "X-User-Id"
)

type contextKey string

// ContextTracingKey carries the tracing.Context through a request.
const ContextTracingKey = contextKey("tracing-context")

// ContextUserIDKey carries the caller's user id through a request.
const ContextUserIDKey = contextKey("user_id")
