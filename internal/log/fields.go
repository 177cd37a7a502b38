package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"
	FieldEvent     = "event"
	FieldSessionID = "session_id"
	FieldMode      = "mode"
	FieldOldState  = "old_state"
	FieldNewState  = "new_state"
	FieldPath      = "path"
	FieldLanguage  = "language"
)
