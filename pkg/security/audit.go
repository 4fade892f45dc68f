package security

import (
	"strings"

	"github.com/studevo/Studevo/pkg/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventLoginFailed          EventType = "login_failed"
	EventLoginSuccess         EventType = "login_success"
	EventRegistrationRejected EventType = "registration_rejected"
	EventRateLimitTriggered   EventType = "rate_limit_triggered"
	EventUnauthorizedAccess   EventType = "unauthorized_access"
)

// Event is one audit record. Email is masked before it is written.
type Event struct {
	Type      EventType
	Email     string
	IP        string
	RequestID string
	Reason    string
}

// Level picks the log level an event is written at.
func Level(t EventType) zapcore.Level {
	switch t {
	case EventLoginSuccess:
		return zapcore.InfoLevel
	case EventUnauthorizedAccess:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Log writes event through the process logger under the "security" name.
func Log(event Event) {
	fields := []zap.Field{zap.String("event", string(event.Type))}
	if event.Email != "" {
		fields = append(fields, zap.String("subject", MaskEmail(event.Email)))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.Reason != "" {
		fields = append(fields, zap.String("reason", event.Reason))
	}

	logger.Log.Desugar().Named("security").Log(Level(event.Type), string(event.Type), fields...)
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	switch {
	case at < 0 || len(email) < 3:
		return "***"
	case at <= 1:
		return "***" + email[at:]
	}
	return email[:1] + "***" + email[at:]
}
