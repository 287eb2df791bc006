package httputil

// HTTP Content-Type constants
const (
	// ContentTypeJSON is the MIME type for JSON responses with UTF-8 charset
	ContentTypeJSON = "application/json; charset=utf-8"

	// ContentTypeHTML is the MIME type for HTML responses with UTF-8 charset
	ContentTypeHTML = "text/html; charset=utf-8"

	// HeaderContentType is the Content-Type header name
	HeaderContentType = "Content-Type"
)
