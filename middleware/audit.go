package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/repositories"
)

// maxAuditBody bounds how much of a request body is copied into the audit log
const maxAuditBody = 4096

// AuditLogger middleware logs all POST/PUT/DELETE requests
func AuditLogger(auditRepo repositories.AuditRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.AuditLogEntry{
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
					Body:      captureBody(r),
				}

				// Log asynchronously to avoid blocking request
				go func() {
					if err := auditRepo.Create(entry); err != nil {
						slog.Error("failed to create audit log", slog.String("path", entry.Path), slog.Any("error", err))
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// captureBody copies the start of the request body and restores it for the handler
func captureBody(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	if len(body) > maxAuditBody {
		body = body[:maxAuditBody]
		// Drop a trailing partial character
		for i := 0; i < utf8.UTFMax-1 && len(body) > 0; i++ {
			if c, size := utf8.DecodeLastRune(body); c != utf8.RuneError || size > 1 {
				break
			}
			body = body[:len(body)-1]
		}
	}
	return string(body)
}
