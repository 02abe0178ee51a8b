package logger

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"seo-pages-go/pkg/utils"
)

// SecurityLogger provides methods to safely log sensitive information
type SecurityLogger struct {
	*Logger
}

// NewSecurityLogger wraps log, or the global logger when log is nil.
func NewSecurityLogger(log *Logger) *SecurityLogger {
	if log == nil {
		log = GetLogger()
	}
	return &SecurityLogger{Logger: log}
}

// MaskAPIEndpoint keeps the host of an API URL and hides the path and query.
func (sl *SecurityLogger) MaskAPIEndpoint(apiURL string) string {
	if apiURL == "" {
		return ""
	}

	parsedURL, err := url.Parse(apiURL)
	if err != nil || parsedURL.Host == "" {
		return "api-endpoint#" + utils.ShortHash(apiURL)
	}
	return fmt.Sprintf("%s/api#%s", parsedURL.Host, utils.ShortHash(apiURL))
}

// MaskSecret replaces a secret with a short stable fingerprint.
func (sl *SecurityLogger) MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return "secret#" + utils.ShortHash(secret)
}

// MaskSensitiveData masks values whose key names an endpoint or a secret.
func (sl *SecurityLogger) MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))

	for key, value := range data {
		lowerKey := strings.ToLower(key)
		str, isString := value.(string)

		switch {
		case isString && (strings.Contains(lowerKey, "key") || strings.Contains(lowerKey, "token") || strings.Contains(lowerKey, "secret")):
			masked[key] = sl.MaskSecret(str)
		case isString && (strings.Contains(lowerKey, "endpoint") || strings.Contains(lowerKey, "url")):
			masked[key] = sl.MaskAPIEndpoint(str)
		default:
			masked[key] = value
		}
	}

	return masked
}

var apiKeyPattern = regexp.MustCompile(`(?i)(key|token|secret)[=:]\s*[a-zA-Z0-9_\-]+`)

// MaskLogMessage masks inline credentials in log messages
func (sl *SecurityLogger) MaskLogMessage(message string) string {
	return apiKeyPattern.ReplaceAllString(message, "${1}=***")
}

// SafeInfo logs info with automatic sensitive data masking
func (sl *SecurityLogger) SafeInfo(msg string, fields map[string]interface{}) {
	if fields != nil {
		sl.Logger.WithFields(sl.MaskSensitiveData(fields)).Info(sl.MaskLogMessage(msg))
	} else {
		sl.Logger.Info(sl.MaskLogMessage(msg))
	}
}
