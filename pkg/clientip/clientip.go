package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers set by common proxies and CDNs.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
)

// GetIP returns the client address of r, or "" when nothing parses.
// Only the trusted headers are read, in order, before RemoteAddr. For
// X-Forwarded-For the last parsable entry wins: it is the one appended by
// the nearest proxy, while earlier entries come from the client.
func GetIP(r *http.Request, trusted ...string) string {
	for _, h := range trusted {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		if http.CanonicalHeaderKey(h) == HeaderXForwardedFor {
			if ip := lastIP(v); ip != "" {
				return ip
			}
			continue
		}
		if ip := parseIP(v); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func lastIP(list string) string {
	parts := strings.Split(list, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		if ip := parseIP(parts[i]); ip != "" {
			return ip
		}
	}
	return ""
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the client address in the request context, reading
// only the trusted headers. With none it uses the connection address.
func Middleware(trusted ...string) func(http.Handler) http.Handler {
	trusted = append([]string(nil), trusted...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), GetIP(r, trusted...))))
		})
	}
}

// LoggerExtractor adds the client address to log records as "client_ip".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
