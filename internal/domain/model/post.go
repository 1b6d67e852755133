package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Post is the client's transient copy of a blog post as returned by the
// platform API. Durable state lives server-side; the client only renders
// and edits it.
type Post struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	BlogContents string    `json:"blogContents"`
	Topics       []string  `json:"topics,omitempty"`
	IsPublished  bool      `json:"isPublished,omitempty"`
	Image        *ImageRef `json:"image"`
	Author       Identity  `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
	Comments     []Comment `json:"comments"`
}

// Comment is a node in a post's recursive comment tree.
type Comment struct {
	Name    string    `json:"name"`
	Text    string    `json:"text"`
	Replies []Comment `json:"replies"`
}

// ByteSeq is a byte sequence that unmarshals from either a JSON number
// array (how the platform serializes Buffer payloads) or a base64 string.
type ByteSeq []byte

// UnmarshalJSON accepts both wire encodings of binary payloads.
func (b *ByteSeq) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s []byte
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode base64 byte sequence: %w", err)
		}
		*b = s
		return nil
	}

	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return fmt.Errorf("decode byte sequence: %w", err)
	}
	out := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return fmt.Errorf("byte sequence value %d out of range", n)
		}
		out[i] = byte(n)
	}
	*b = out
	return nil
}

// ImageRef is an opaque binary image payload embedded in API responses.
// The nested Data shape mirrors the platform's Buffer serialization.
// The client never persists it, only renders it.
type ImageRef struct {
	Data struct {
		Data ByteSeq `json:"data"`
	} `json:"data"`
	ContentType string `json:"contentType"`
}

// Bytes returns the raw image payload.
func (ref *ImageRef) Bytes() []byte {
	if ref == nil {
		return nil
	}
	return ref.Data.Data
}
