package apierror

// Error type URIs following the urn:moodloom:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:moodloom:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:moodloom:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:moodloom:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:moodloom:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:moodloom:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:moodloom:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:moodloom:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleForbidden    = "Permission Denied"
	TitleInternal     = "Internal Server Error"
	TitleBadRequest   = "Bad Request"
)
