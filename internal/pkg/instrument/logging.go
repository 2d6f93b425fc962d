package instrument

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// initLogging installs the process-wide slog logger: a JSON handler on stdout
// plus the OTLP bridge, with sensitive fields masked before either sees them.
func initLogging(serviceName string, lp *sdklog.LoggerProvider, maskFields []string) {
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		AddSource:   true,
		ReplaceAttr: renameStandardAttrs,
	})

	var handler slog.Handler = jsonHandler
	if lp != nil {
		handler = &fanoutHandler{handlers: []slog.Handler{
			jsonHandler,
			otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(lp)),
		}}
	}

	slog.SetDefault(slog.New(&contextHandler{
		Handler:     &maskHandler{handler: handler, maskKeys: normalizeMaskKeys(maskFields)},
		serviceName: serviceName,
	}))
}

func renameStandardAttrs(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		// Trim absolute build paths down to the repo-relative file.
		if !strings.Contains(src.File, "/internal/") {
			return slog.Attr{}
		}
		rel := filepath.Join("internal", strings.SplitAfter(src.File, "/internal/")[1])
		return slog.String("file", fmt.Sprintf("%s:%d", rel, src.Line))
	}
	return a
}

// contextHandler enriches every record with the service name and, when
// present, the request correlation ID.
type contextHandler struct {
	slog.Handler
	serviceName string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cid := GetCorrelationID(ctx); cid != "" {
		r.AddAttrs(slog.String("_cID", cid))
	}
	r.AddAttrs(slog.String("service", h.serviceName))

	return h.Handler.Handle(ctx, r)
}

// fanoutHandler duplicates records to every wrapped handler.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (m *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range m.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range m.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, handler := range m.handlers {
		handlers = append(handlers, handler.WithAttrs(attrs))
	}
	return &fanoutHandler{handlers: handlers}
}

func (m *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, handler := range m.handlers {
		handlers = append(handlers, handler.WithGroup(name))
	}
	return &fanoutHandler{handlers: handlers}
}

// maskHandler replaces the values of configured keys with "***". It also
// looks inside JSON-encoded string and []byte attributes, which is how request
// and response bodies reach the logger.
type maskHandler struct {
	handler  slog.Handler
	maskKeys map[string]struct{}
}

func (h *maskHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *maskHandler) Handle(ctx context.Context, record slog.Record) error {
	if len(h.maskKeys) == 0 {
		return h.handler.Handle(ctx, record)
	}

	masked := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(attr))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &maskHandler{handler: h.handler.WithAttrs(attrs), maskKeys: h.maskKeys}
}

func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{handler: h.handler.WithGroup(name), maskKeys: h.maskKeys}
}

func (h *maskHandler) maskAttr(attr slog.Attr) slog.Attr {
	if _, found := h.maskKeys[strings.ToLower(attr.Key)]; found {
		return slog.String(attr.Key, "***")
	}

	switch attr.Value.Kind() {
	case slog.KindGroup:
		group := attr.Value.Group()
		masked := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			masked = append(masked, h.maskAttr(ga))
		}
		attr.Value = slog.GroupValue(masked...)

	case slog.KindString:
		if masked, ok := h.maskJSON([]byte(attr.Value.String())); ok {
			attr.Value = slog.StringValue(masked)
		}

	case slog.KindAny:
		switch val := attr.Value.Any().(type) {
		case map[string]any:
			attr.Value = slog.AnyValue(h.maskValue(val))
		case map[string]string:
			converted := make(map[string]any, len(val))
			for k, v := range val {
				converted[k] = v
			}
			attr.Value = slog.AnyValue(h.maskValue(converted))
		case []any:
			attr.Value = slog.AnyValue(h.maskValue(val))
		case []byte:
			if masked, ok := h.maskJSON(val); ok {
				attr.Value = slog.StringValue(masked)
			}
		}
	}

	return attr
}

func (h *maskHandler) maskJSON(payload []byte) (string, bool) {
	if len(payload) == 0 || (payload[0] != '{' && payload[0] != '[') {
		return "", false
	}

	var body any
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", false
	}

	masked, err := json.Marshal(h.maskValue(body))
	if err != nil {
		return "", false
	}
	return string(masked), true
}

func (h *maskHandler) maskValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if _, found := h.maskKeys[strings.ToLower(k)]; found {
				masked[k] = "***"
			} else {
				masked[k] = h.maskValue(inner)
			}
		}
		return masked
	case []any:
		masked := make([]any, len(val))
		for i, inner := range val {
			masked[i] = h.maskValue(inner)
		}
		return masked
	default:
		return v
	}
}

func normalizeMaskKeys(fields []string) map[string]struct{} {
	keys := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(strings.ToLower(field))
		if field == "" {
			continue
		}
		keys[field] = struct{}{}
	}
	return keys
}
