package metric

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	otm "go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func newHttpMeters() (*httpMeters, error) {
	hm := &httpMeters{}
	if err := createMeters(hm); err != nil {
		return nil, err
	}
	return hm, nil
}

type httpMeters struct {
	RequestSize   otm.Int64Histogram   `name:"krpc.http.request.size" description:"Measures the size of HTTP request bodies." unit:"By"`
	ResponseSize  otm.Int64Histogram   `name:"krpc.http.response.size" description:"Measures the size of HTTP response bodies." unit:"By"`
	ServerLatency otm.Float64Histogram `name:"krpc.http.latency" description:"Measures the duration of inbound HTTP requests." unit:"ms"`
}

// GinMiddleware records size and latency of every request served by the
// HTTP mirror. It passes requests through untouched when http metrics are off.
func (s *service) GinMiddleware() gin.HandlerFunc {
	if !s.cfg.Enable.Http {
		return func(c *gin.Context) { c.Next() }
	}
	m, err := newHttpMeters()
	if err != nil {
		slog.Error("Failed to create http meters. Http metrics will be disabled.", "error", err)
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		reqSize := max(c.Request.ContentLength, 0)
		respSize := int64(max(c.Writer.Size(), 0))
		opts := otm.WithAttributeSet(attribute.NewSet(httpAttributes(c.Request, c.FullPath(), c.Writer.Status())...))
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)

		ctx := c.Request.Context()
		m.RequestSize.Record(ctx, reqSize, opts)
		m.ResponseSize.Record(ctx, respSize, opts)
		m.ServerLatency.Record(ctx, elapsed, opts)
	}
}

func httpAttributes(req *http.Request, route string, status int) []attribute.KeyValue {
	attrs := []attribute.KeyValue{httpMethod(req.Method)}
	if req.TLS != nil {
		attrs = append(attrs, semconv.URLScheme("https"))
	} else {
		attrs = append(attrs, semconv.URLScheme("http"))
	}
	host, port := splitHostPort(req.Host)
	if host != "" {
		attrs = append(attrs, semconv.ServerAddress(host))
	}
	if port > 0 {
		attrs = append(attrs, semconv.ServerPort(port))
	}
	if name, version, ok := strings.Cut(req.Proto, "/"); ok {
		attrs = append(attrs,
			semconv.NetworkProtocolName(strings.ToLower(name)),
			semconv.NetworkProtocolVersion(version))
	}
	if status > 0 {
		attrs = append(attrs, semconv.HTTPResponseStatusCode(status))
	}
	if route != "" {
		attrs = append(attrs, semconv.HTTPRoute(route))
	}
	return attrs
}

func httpMethod(method string) attribute.KeyValue {
	method = strings.ToUpper(method)
	switch method {
	case http.MethodDelete, http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPatch, http.MethodPost, http.MethodPut:
	default:
		method = "_OTHER"
	}
	return semconv.HTTPRequestMethodKey.String(method)
}

func splitHostPort(hostport string) (string, int) {
	host, p, err := net.SplitHostPort(hostport)
	if err != nil {
		return hostport, -1
	}
	port, err := strconv.ParseUint(p, 10, 16)
	if err != nil {
		return host, -1
	}
	return host, int(port)
}
