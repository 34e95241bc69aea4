// Package mime unwraps MTOM/XOP multipart responses into bare SOAP envelopes
package mime

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

const (
	// ContentTypeMultipartRelated is the MIME type for multipart/related
	ContentTypeMultipartRelated = "multipart/related"
	// ContentTypeXOP is the MIME type of the XOP root part
	ContentTypeXOP = "application/xop+xml"
	// ContentTypeSOAPXML is the MIME type for SOAP 1.2
	ContentTypeSOAPXML = "application/soap+xml"

	// XOPMarker is the part header whose presence in a raw body triggers repair
	XOPMarker = "Content-Type: " + ContentTypeXOP
)

var envelopeOpen = regexp.MustCompile(`<(?:([A-Za-z_][\w.-]*):)?Envelope[\s>/]`)

// RepairXOP returns the SOAP envelope embedded in a raw MTOM/XOP body.
//
// When raw contains XOPMarker, the result is the substring from the first
// envelope start tag through its matching end tag; MIME preamble, boundaries
// and trailing parts are dropped. Without the marker, or when no complete
// envelope can be located, raw is returned unchanged.
func RepairXOP(raw []byte) []byte {
	if !bytes.Contains(raw, []byte(XOPMarker)) {
		return raw
	}

	loc := envelopeOpen.FindSubmatchIndex(raw)
	if loc == nil {
		return raw
	}
	start := loc[0]

	closing := "</Envelope>"
	if loc[2] >= 0 {
		closing = "</" + string(raw[loc[2]:loc[3]]) + ":Envelope>"
	}

	end := bytes.Index(raw[start:], []byte(closing))
	if end < 0 {
		return raw
	}

	return raw[start : start+end+len(closing)]
}

// Part is the root part of a multipart/related message
type Part struct {
	ContentID   string
	ContentType string
	// Type is the type parameter of an XOP root, e.g. application/soap+xml
	Type string
	// Data is the part body converted to UTF-8
	Data []byte
}

// IsMultipart reports whether a Content-Type header announces multipart/related
func IsMultipart(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == ContentTypeMultipartRelated
}

// ParseRelated parses a multipart/related body and returns its root part.
// The root is the part named by the start parameter, or the first part.
func ParseRelated(r io.Reader, contentType string) (*Part, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content type: %w", err)
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		return nil, fmt.Errorf("not a multipart message: %s", mediaType)
	}

	boundary := params["boundary"]
	if boundary == "" {
		return nil, fmt.Errorf("boundary not found in content type")
	}
	startID := normalizeContentID(params["start"])

	reader := multipart.NewReader(r, boundary)
	var root *Part

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read part: %w", err)
		}

		contentID := part.Header.Get("Content-ID")
		isRoot := false
		if startID != "" {
			isRoot = normalizeContentID(contentID) == startID
		} else {
			isRoot = root == nil
		}
		if !isRoot {
			continue
		}

		data, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("failed to read part data: %w", err)
		}

		partType := part.Header.Get("Content-Type")
		root = &Part{
			ContentID:   contentID,
			ContentType: partType,
		}

		if partType != "" {
			_, partParams, err := mime.ParseMediaType(partType)
			if err != nil {
				return nil, fmt.Errorf("failed to parse part content type: %w", err)
			}
			root.Type = partParams["type"]
			data, err = decodeCharset(data, partParams["charset"])
			if err != nil {
				return nil, err
			}
		}
		root.Data = data

		if startID != "" {
			break
		}
	}

	if root == nil {
		return nil, fmt.Errorf("root part not found in message")
	}

	return root, nil
}

// decodeCharset converts data from the named charset to UTF-8
func decodeCharset(data []byte, charset string) ([]byte, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "us-ascii") {
		return data, nil
	}

	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s part: %w", charset, err)
	}
	return decoded, nil
}

// normalizeContentID normalizes a Content-ID for comparison
func normalizeContentID(contentID string) string {
	contentID = strings.TrimPrefix(contentID, "cid:")
	contentID = strings.TrimPrefix(contentID, "<")
	contentID = strings.TrimSuffix(contentID, ">")
	return contentID
}

// Unwrap returns a bare SOAP envelope for a response body.
// A multipart/related Content-Type is parsed structurally; anything else,
// or a multipart body that fails to parse, goes through RepairXOP.
func Unwrap(body []byte, contentType string) []byte {
	if IsMultipart(contentType) {
		if part, err := ParseRelated(bytes.NewReader(body), contentType); err == nil {
			return part.Data
		}
	}
	return RepairXOP(body)
}
