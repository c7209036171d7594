// Package video accepts client notifications that a direct upload finished.
package video

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// SuccessMessage is returned with every accepted registration.
const SuccessMessage = "Video registered successfully"

// Registration is the client-asserted record of a completed upload. Nothing
// checks that ObjectKey was issued by this service or that the object exists.
type Registration struct {
	ObjectKey string `json:"object_key" example:"uploads/5f0c3e5e-8f1b-4c55-9a3c-2a1b7f0e9d11/clip.mp4"`
	UserID    string `json:"user_id"    example:"user_2abc"`
	Filename  string `json:"filename"   example:"clip.mp4"`
}

// Acknowledgement echoes a registration back to the client.
type Acknowledgement struct {
	Status    string `json:"status"    example:"success"`
	Message   string `json:"message"   example:"Video registered successfully"`
	ObjectKey string `json:"objectKey" example:"uploads/5f0c3e5e-8f1b-4c55-9a3c-2a1b7f0e9d11/clip.mp4"`
	UserID    string `json:"userId"    example:"user_2abc"`
	Filename  string `json:"filename"  example:"clip.mp4"`
}

// Acknowledge builds the echo response for reg.
func Acknowledge(reg Registration) Acknowledgement {
	return Acknowledgement{
		Status:    "success",
		Message:   SuccessMessage,
		ObjectKey: reg.ObjectKey,
		UserID:    reg.UserID,
		Filename:  reg.Filename,
	}
}

// ValidationError describes a structurally invalid registration body.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// requiredFields lists the body fields in the order they are checked.
var requiredFields = []string{"object_key", "user_id", "filename"}

// DecodeRegistration parses a JSON object whose required fields must all be
// present as strings. Unknown fields are ignored.
func DecodeRegistration(r io.Reader) (Registration, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil || raw == nil {
		return Registration{}, &ValidationError{Reason: "request body must be a JSON object"}
	}

	values := make(map[string]string, len(requiredFields))
	for _, field := range requiredFields {
		msg, ok := raw[field]
		if !ok {
			return Registration{}, &ValidationError{Field: field, Reason: "field required"}
		}
		var s string
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) || json.Unmarshal(msg, &s) != nil {
			return Registration{}, &ValidationError{Field: field, Reason: "value must be a string"}
		}
		values[field] = s
	}

	return Registration{
		ObjectKey: values["object_key"],
		UserID:    values["user_id"],
		Filename:  values["filename"],
	}, nil
}
