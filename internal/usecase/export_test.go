package usecase

// Exported aliases so the external usecase_test package can reference
// unexported constants without creating an import cycle with internal/test.
const (
	DefaultServiceIcon = defaultServiceIcon
	MsgRequired        = msgRequired
	MsgInvalidEmail    = msgInvalidEmail
	MsgInvalidPhone    = msgInvalidPhone
)
