package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/osse101/SentimentService_Go/internal/logger"
)

// respondText sends a plain-text response
func respondText(w http.ResponseWriter, r *http.Request, status int, body string) {
	respondBytes(w, r, status, ContentTypeText, []byte(body))
}

// respondJSON sends a pre-encoded JSON body
func respondJSON(w http.ResponseWriter, r *http.Request, status int, buf *bytes.Buffer) {
	respondBytes(w, r, status, ContentTypeJSON, buf.Bytes())
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	buf := getBuffer()
	defer putBuffer(buf)

	writeErrorJSON(buf, message)
	respondJSON(w, r, status, buf)
}

// respondBytes sets Content-Type and Content-Length from the encoded body before writing headers
func respondBytes(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	h := w.Header()
	h.Set(HeaderContentType, contentType)
	h.Set(HeaderContentLength, strconv.Itoa(len(body)))
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		// Headers are already sent; nothing left to tell the client
		logger.FromContext(r.Context()).Warn(LogMsgWriteFailed, "error", err)
	}
}
