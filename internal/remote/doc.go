// Package remote provides the HTTP gateway for the product seed API and the
// berry reference API.
//
// Requests carry a User-Agent and a per-request X-Request-ID that is also
// attached to the zap log entry. Transport failures and error statuses are
// returned as *NetworkError; a missing berry wraps ErrNotFound.
package remote
