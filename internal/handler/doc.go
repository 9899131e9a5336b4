// Package handler contains the HTTP layer: request decoding, session
// extraction, and response shaping. Business rules live in the service
// layer; handlers only translate between HTTP and service calls.
package handler
