// Package api is the typed HTTP client for the chatbot platform's admin
// endpoints.
//
// # Endpoints
//
// The client covers the five JSON endpoints the console depends on:
//
//   - GET  /api/get-api-config  — stored provider credential, if any
//   - POST /api/save-api-config — persist a provider credential
//   - POST /api/test-api-key    — live-test a credential against the vendor
//   - GET  /api/sms/sent        — sent SMS records for a period
//   - GET  /api/sms/stats       — aggregate delivery counts for a period
//
// # Error model
//
// Transport problems and non-2xx statuses surface as errors wrapping
// ErrTransport; the caller renders them as one generic connection message.
// A 2xx response with success:false surfaces as *APIError carrying the
// server's reason text. Callers never retry automatically.
//
// Every request carries Content-Type/Accept application/json and, when
// configured, the CSRF token in the X-CSRFToken header.
package api
