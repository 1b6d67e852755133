package model

import "encoding/base64"

// dataURIPrefix tags every encoded image as PNG. The declared content
// type is deliberately ignored: the platform API serves PNG payloads in
// practice, and the upstream contract has not been confirmed to include
// other formats. Do not "fix" this without confirming upstream.
const dataURIPrefix = "data:image/png;base64,"

// DataURI encodes an image payload into a displayable data URI. It is a
// pure, total function: a nil receiver yields the empty string, and an
// empty payload still yields a valid empty-payload URI.
func (ref *ImageRef) DataURI() string {
	if ref == nil {
		return ""
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(ref.Data.Data)
}
