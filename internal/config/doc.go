// Package config handles configuration loading for monchat-console.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	csrf:
//	  token: "${MONCHAT_CSRF_TOKEN}"
//
// Syntax: ${VAR_NAME}
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	form:
//	  reload_delay: "2s"
//	http:
//	  timeout: "15s"
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  base_url: "http://localhost:5000"
//
// CSRF token (pre-issued by the backend, forwarded verbatim):
//
//	csrf:
//	  token: "${MONCHAT_CSRF_TOKEN}"
//	  token_file: "/home/op/.config/monchat/csrf"
//
// Inbox view:
//
//	inbox:
//	  page_size: 20
//	  default_period: "today"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
package config
