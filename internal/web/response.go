package web

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// RespondJSON writes a success envelope with the given payload.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

// RespondError funnels any error through the single failure formatter.
// *Error values carry their own status, message and field errors; anything
// else is treated as an internal server error.
func RespondError(w http.ResponseWriter, err error) {
	e := From(err)
	writeJSON(w, e.Status, Response{Success: false, Message: e.Message, Errors: e.Fields})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
