package har

import (
	"encoding/json"
	"fmt"
	"os"
)

// HAR is the decoded top level of an HTTP Archive file.
type HAR struct {
	Log Log `json:"log"`
}

// Log holds the recorded traffic entries.
type Log struct {
	Entries []Entry `json:"entries"`
}

// Entry is one captured request/response exchange.
type Entry struct {
	Request  Request  `json:"request"`
	Response Response `json:"response"`
}

// Request is the recorded request side of an exchange.
type Request struct {
	Method   string    `json:"method"`
	URL      string    `json:"url"`
	PostData *PostData `json:"postData,omitempty"`
}

// PostData is the recorded request body, when one was captured.
type PostData struct {
	MimeType string  `json:"mimeType"`
	Text     *string `json:"text"`
}

// Response is the recorded response side of an exchange.
type Response struct {
	Status     int     `json:"status"`
	StatusText string  `json:"statusText"`
	Content    Content `json:"content"`
}

// Content is the recorded response body.
type Content struct {
	MimeType string  `json:"mimeType"`
	Text     *string `json:"text"`
}

// Load reads and decodes a HAR file. An unreadable file or an undecodable
// top-level structure is fatal to the run; malformed individual entries are
// tolerated downstream.
func Load(path string) (*HAR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HAR file: %v", err)
	}

	var archive HAR
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("failed to parse HAR file: %v", err)
	}

	return &archive, nil
}

// MethodOrDefault returns the recorded method, defaulting to GET when the
// capture omitted it.
func (r Request) MethodOrDefault() string {
	if r.Method == "" {
		return "GET"
	}
	return r.Method
}

// BodyText returns the recorded request body text. A missing body defaults
// to an empty JSON object literal; a body that is present but empty is
// returned as-is so it reads as unparseable rather than as an empty object.
func (r Request) BodyText() string {
	if r.PostData == nil || r.PostData.Text == nil {
		return "{}"
	}
	return *r.PostData.Text
}

// StatusOrDefault returns the recorded status code, defaulting to 200 when
// the capture omitted it.
func (r Response) StatusOrDefault() int {
	if r.Status == 0 {
		return 200
	}
	return r.Status
}

// BodyText returns the recorded response body text, defaulting a missing
// body to an empty JSON object literal.
func (r Response) BodyText() string {
	if r.Content.Text == nil {
		return "{}"
	}
	return *r.Content.Text
}
