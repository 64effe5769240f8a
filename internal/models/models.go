package models

import "encoding/json"

// Submission is the request body of the append endpoint. Records are
// kept as raw JSON so the key order of the first record (which
// becomes the header row) survives decoding.
type Submission struct {
	Username  string            `json:"username"`
	ImageType string            `json:"imageType"`
	FolderID  string            `json:"folderId,omitempty"`
	ImageData []json.RawMessage `json:"imageData"`
}

// Response is the uniform envelope for success and failure.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
