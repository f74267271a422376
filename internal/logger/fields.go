package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the structured log field key for the model provider name.
	FieldProvider = "llm_provider"
	// FieldModel is the structured log field key for the model identifier.
	FieldModel = "llm_model"
	// FieldRequestID is the structured log field key for the HTTP request ID.
	FieldRequestID = "request_id"
	// FieldOperation is the structured log field key for the backend operation.
	FieldOperation = "operation"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// BackendFields describes the model provider and model. Empty values are dropped.
func BackendFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithBackend attaches the backend fields to the provided logger.
func WithBackend(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, BackendFields(provider, model)...)
}
