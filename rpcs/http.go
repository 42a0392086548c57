package rpcs

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/593413198/bst/logs"
	"github.com/gorilla/mux"
	stderr "github.com/pkg/errors"
)

const HttpHeaderTraceID = "X-TRACE-ID"

// HttpMiddleware are the handlers that serve a request and return the
// value to be encoded as the response body
type HttpMiddleware interface {
	// ServeHTTP allows to handle an http request. The response will be serialized
	// by an HttpRoute
	ServeHTTP(req *http.Request) (interface{}, error)
}

// HttpMiddlewareFunc allows functions to implement the HttpMiddleware interface
type HttpMiddlewareFunc func(req *http.Request) (interface{}, error)

func (f HttpMiddlewareFunc) ServeHTTP(req *http.Request) (interface{}, error) {
	return f(req)
}

// ParseTraceID parses the trace id sent by a client. A missing or
// malformed value yields a new random id
func ParseTraceID(value string) int64 {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return rand.Int63()
	}

	return id
}

// HttpRoute adapts an HttpMiddleware into an http.Handler. It attaches
// the trace id to the request, recovers from panics, encodes the
// result as JSON and logs the outcome
type HttpRoute struct {
	logger  logs.Logger
	handler HttpMiddleware
	metrics *Metrics
	op      string
}

// HttpRouteProps are the required properties to create
// a new HttpRoute instance
type HttpRouteProps struct {
	Logger  logs.Logger
	Handler HttpMiddleware
	Metrics *Metrics

	// Op names the operation in metrics
	Op string
}

// NewHttpRoute creates a new route instance
func NewHttpRoute(props HttpRouteProps) *HttpRoute {
	if props.Logger == nil {
		panic("logger must be set")
	}

	if props.Handler == nil {
		panic("handler must be set")
	}

	return &HttpRoute{
		logger:  props.Logger,
		handler: props.Handler,
		metrics: props.Metrics,
		op:      props.Op,
	}
}

// ServeHTTP implementation of http.Handler for HttpRoute
func (h *HttpRoute) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	traceID := ParseTraceID(req.Header.Get(HttpHeaderTraceID))
	req = req.WithContext(logs.WithTraceID(req.Context(), traceID))
	res.Header().Set(HttpHeaderTraceID, strconv.FormatInt(traceID, 10))

	h.logger.Debug(req.Context(), "handle request", logs.MapFields{
		"path":      req.URL.Path,
		"method":    req.Method,
		"call_type": "HttpRequestHandleAttempt",
	})

	defer func() {
		if r := recover(); r != nil {
			var err error
			switch x := r.(type) {
			case string:
				err = stderr.New(x)
			case error:
				err = x
			default:
				err = fmt.Errorf("unknown panic %+v", r)
			}

			h.logger.Warn(req.Context(), "unexpected panic caught", logs.MapFields{
				"path":       req.URL.Path,
				"method":     req.Method,
				"call_type":  "HttpRequestHandleFailure",
				"err":        err.Error(),
				"stacktrace": string(debug.Stack()),
			})
			h.report(res, req, h.reportError(res, req, HttpInternalServerError(req.Context(), err)), err)
		}
	}()

	v, err := h.handler.ServeHTTP(req)
	if err != nil {
		h.report(res, req, h.reportAnyError(res, req, err), err)
		return
	}

	h.report(res, req, h.reportSuccess(res, req, v), nil)
}

func (h *HttpRoute) report(res http.ResponseWriter, req *http.Request, status int, err error) {
	h.metrics.observe(h.op, status)

	fields := logs.MapFields{
		"path":   req.URL.Path,
		"method": req.Method,
		"status": status,
	}
	if err != nil {
		fields.Add("err", err.Error())
	}

	switch {
	case status >= 400:
		h.logger.Warn(req.Context(), "error", fields)
	default:
		h.logger.Info(req.Context(), "success", fields)
	}
}

func (h *HttpRoute) reportSuccess(res http.ResponseWriter, req *http.Request, body interface{}) int {
	if body == nil {
		res.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent
	}

	return h.encode(res, req, http.StatusOK, body)
}

func (h *HttpRoute) reportAnyError(res http.ResponseWriter, req *http.Request, err error) int {
	var herr *HttpError
	if stderr.As(err, &herr) {
		return h.reportError(res, req, herr)
	}

	return h.reportError(res, req, HttpInternalServerError(req.Context(), err))
}

func (h *HttpRoute) reportError(res http.ResponseWriter, req *http.Request, err *HttpError) int {
	return h.encode(res, req, err.StatusCode, err.body())
}

func (h *HttpRoute) encode(res http.ResponseWriter, req *http.Request, status int, body interface{}) int {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Warn(req.Context(), "failed to encode response", logs.MapFields{
			"path":      req.URL.Path,
			"method":    req.Method,
			"call_type": "HttpEncodeError",
			"err":       err.Error(),
		})
		res.WriteHeader(http.StatusInternalServerError)
		return http.StatusInternalServerError
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_, _ = res.Write(data)
	return status
}

// HttpBinder collects the routes of a server before building the
// http.Handler that serves them. A handler cannot be modified after
// it has been built
type HttpBinder struct {
	router  *mux.Router
	logger  logs.Logger
	metrics *Metrics
	cors    *HttpCorsPreProcessor
}

// HttpBinderProperties are the properties used to create
// a new instance of an HttpBinder
type HttpBinderProperties struct {
	Logger  logs.Logger
	Metrics *Metrics
	Cors    HttpCorsPreProcessorProps
}

// NewHttpBinder creates a new instance of the HttpBinder. It will
// panic in case there are errors in the construction of the binder
func NewHttpBinder(props HttpBinderProperties) *HttpBinder {
	if props.Logger == nil {
		panic("Logger must be set")
	}

	if props.Metrics == nil {
		panic("Metrics must be set")
	}

	b := &HttpBinder{
		router:  mux.NewRouter(),
		logger:  props.Logger,
		metrics: props.Metrics,
		cors:    NewHttpCorsPreProcessor(props.Cors),
	}

	b.router.NotFoundHandler = b.fallback("not_found", HttpNotFound)
	b.router.MethodNotAllowedHandler = b.fallback("method_not_allowed", HttpMethodNotAllowed)
	b.router.Handle("/metrics", props.Metrics.Handler()).Methods(http.MethodGet)
	return b
}

func (b *HttpBinder) fallback(op string, fn func(context.Context, error) *HttpError) http.Handler {
	return NewHttpRoute(HttpRouteProps{
		Logger:  b.logger,
		Metrics: b.metrics,
		Op:      op,
		Handler: HttpMiddlewareFunc(func(req *http.Request) (interface{}, error) {
			return nil, fn(req.Context(), nil)
		}),
	})
}

// Bind registers handler for the method and uri. op names the
// operation in logs and metrics
func (b *HttpBinder) Bind(method, uri, op string, handler HttpMiddleware) {
	b.router.Handle(uri, NewHttpRoute(HttpRouteProps{
		Logger:  b.logger,
		Handler: handler,
		Metrics: b.metrics,
		Op:      op,
	})).Methods(method)
}

// Build returns the http.Handler serving every bound route
func (b *HttpBinder) Build() http.Handler {
	return b.cors.Wrap(b.router)
}
