package rpcs

import (
	"net/http"

	"github.com/rs/cors"
)

// HttpCorsPreProcessorProps properties used to define the behaviour
// of the CORS implementation
type HttpCorsPreProcessorProps struct {
	// Enabled if true the HttpCorsPreProcessor will verify requests, if false
	// the handler will just pass on a request to the next handler
	Enabled bool

	// AllowedOrigins is a list of origins a cross-domain request can be executed from.
	// If the special "*" value is present in the list, all origins will be allowed.
	// An origin may contain a wildcard (*) to replace 0 or more characters
	// (i.e.: http://*.domain.com). Only one wildcard can be used per origin.
	// Default value is ["*"]
	AllowedOrigins []string

	// AllowedMethods is a list of methods the client is allowed to use with
	// cross-domain requests. Defaults to the methods the tree routes use
	AllowedMethods []string

	// AllowedHeaders is list of non simple headers the client is allowed to use with
	// cross-domain requests.
	AllowedHeaders []string

	// MaxAge indicates how long (in seconds) the results of a preflight request
	// can be cached
	MaxAge int
}

// HttpCorsPreProcessor handles CORS https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
// for requests
type HttpCorsPreProcessor struct {
	cors    *cors.Cors
	enabled bool
}

// NewHttpCorsPreProcessor creates a new instance of a Cors Http PreProcessor
func NewHttpCorsPreProcessor(props HttpCorsPreProcessorProps) *HttpCorsPreProcessor {
	methods := props.AllowedMethods
	if len(methods) == 0 {
		methods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}
	}

	headers := append([]string{HttpHeaderTraceID}, props.AllowedHeaders...)

	return &HttpCorsPreProcessor{
		cors: cors.New(cors.Options{
			AllowedOrigins:     props.AllowedOrigins,
			AllowedMethods:     methods,
			AllowedHeaders:     headers,
			ExposedHeaders:     []string{HttpHeaderTraceID},
			MaxAge:             props.MaxAge,
			OptionsPassthrough: false,
			Debug:              false,
		}),
		enabled: props.Enabled,
	}
}

// Wrap returns next guarded by the CORS checks. Preflight requests
// are answered directly
func (h *HttpCorsPreProcessor) Wrap(next http.Handler) http.Handler {
	if !h.enabled {
		return next
	}

	return h.cors.Handler(next)
}
