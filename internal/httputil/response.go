// Package httputil carries the JSON envelope every handler speaks:
// {"status":"ok","data":...} on success, {"status":"error","error":{...}} on
// failure, so clients branch on one shape.
package httputil

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes bounds request bodies. View settings records and credential
// payloads are small; nothing legitimate comes close to this.
const maxBodyBytes = 1 << 20

type Envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{
		Status: "ok",
		Data:   data,
	})
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{
		Status: "error",
		Error:  &APIError{Code: code, Message: message},
	})
}

// ReadJSON decodes the request body into dst, capped at maxBodyBytes so a
// hostile client cannot stream an unbounded settings blob.
func ReadJSON(r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}
