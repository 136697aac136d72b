package i18n

// Common errors
var (
	ErrNotFound       = NewErrorWithCode("ErrorResourceNotFound", ErrorNotFound)
	ErrUnauthorized   = NewErrorWithCode("ErrorUnauthorized", ErrorUnauthorized)
	ErrForbidden      = NewErrorWithCode("ErrorForbidden", ErrorForbidden)
	ErrBadRequest     = NewErrorWithCode("ErrorBadRequest", ErrorBadRequest)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)
)

// Session bootstrap errors. Each failure kind of the login flow maps to its
// own message so the client can surface a specific corrective action.
var (
	ErrorInvalidCredentials = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
	ErrorProfileLookup      = NewErrorWithCode("ErrorProfileLookup", ErrorServiceUnavailable)
	ErrorNoProfile          = NewErrorWithCode("ErrorNoProfile", ErrorForbidden)
	ErrorSurfaceNotAllowed  = NewErrorWithCode("ErrorSurfaceNotAllowed", ErrorForbidden)
	ErrorNoCompanyAvailable = NewErrorWithCode("ErrorNoCompanyAvailable", ErrorForbidden)
	ErrorInvalidSurface     = NewErrorWithCode("ErrorInvalidSurface", ErrorBadRequest)
)

// Tenant related errors
var (
	ErrorTenantNotFound       = NewErrorWithCode("ErrorTenantNotFound", ErrorNotFound)
	ErrorTenantRequiredFields = NewErrorWithCode("ErrorTenantRequiredFields", ErrorBadRequest)
	ErrorTenantSlugExists     = NewErrorWithCode("ErrorTenantSlugExists", ErrorConflict)
	ErrorTenantSlugReserved   = NewErrorWithCode("ErrorTenantSlugReserved", ErrorBadRequest)
	ErrorTenantNameExists     = NewErrorWithCode("ErrorTenantNameExists", ErrorConflict)
)

// User related errors
var (
	ErrorUserNotFound             = NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	ErrorUserDisabled             = NewErrorWithCode("ErrorUserDisabled", ErrorForbidden)
	ErrorEmailPasswordRequired    = NewErrorWithCode("ErrorEmailPasswordRequired", ErrorBadRequest)
	ErrorInvalidOldPassword       = NewErrorWithCode("ErrorInvalidOldPassword", ErrorForbidden)
	ErrorEmailExists              = NewErrorWithCode("ErrorEmailExists", ErrorConflict)
	ErrorInvalidRole              = NewErrorWithCode("ErrorInvalidRole", ErrorBadRequest)
	ErrorCompanyAssignmentInvalid = NewErrorWithCode("ErrorCompanyAssignmentInvalid", ErrorBadRequest)
)

// Success messages
const (
	SuccessLogin          = "SuccessLogin"
	SuccessLogout         = "SuccessLogout"
	SuccessPasswordChange = "SuccessPasswordChange"
	SuccessUserCreated    = "SuccessUserCreated"
	SuccessUserUpdated    = "SuccessUserUpdated"
	SuccessUserDeleted    = "SuccessUserDeleted"
	SuccessTenantCreated  = "SuccessTenantCreated"
	SuccessTenantUpdated  = "SuccessTenantUpdated"
	SuccessTenantDeleted  = "SuccessTenantDeleted"
)
