package resputil

type ErrorCode int

const (
	OK ErrorCode = 0

	// General
	InvalidRequest ErrorCode = 40001

	// Token
	TokenExpired    ErrorCode = 40101
	TokenInvalid    ErrorCode = 40102
	Unauthenticated ErrorCode = 40103

	// Login
	InvalidCredentials ErrorCode = 40106
	EmailAlreadyUsed   ErrorCode = 40107

	// Caller lacks the required workspace role or ownership
	PermissionDenied ErrorCode = 40301

	// Referenced workspace/task/user row is absent
	NotFound ErrorCode = 40401

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
