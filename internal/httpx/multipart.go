package httpx

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	s3err "github.com/bleepstore/s3kit/internal/errors"
)

// FormUpload is the decoded multipart/form-data envelope of a browser POST
// Object request: the policy/key/acl/etc fields that preceded the file
// part, and the file part's own name, content type, and stream, left
// unconsumed so the caller can copy it straight into storage rather than
// buffering an object's bytes through this package.
//
// Field names are folded to lower case, matching the S3 POST form
// convention that form field names are case-insensitive.
type FormUpload struct {
	fields map[string]string

	FileName    string
	ContentType string
	File        io.Reader
}

// Field looks up a form field's value by case-insensitive name.
func (u *FormUpload) Field(name string) (string, bool) {
	v, ok := u.fields[strings.ToLower(name)]
	return v, ok
}

// Fields returns a copy of every non-file field collected before the file
// part, keyed by lower-cased name.
func (u *FormUpload) Fields() map[string]string {
	out := make(map[string]string, len(u.fields))
	for k, v := range u.fields {
		out[k] = v
	}
	return out
}

// ParseFormUpload reads a POST Object request's multipart/form-data body up
// to (and not including) its file part. Fields are read into memory in
// full; the file part itself is returned as an unconsumed reader bound to
// the underlying request body, so arbitrarily large uploads never pass
// through an in-memory buffer.
//
// Per the S3 POST policy convention, any fields appearing after the file
// part are ignored: the file part must be the last field in the form.
func ParseFormUpload(r *http.Request) (*FormUpload, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, s3err.ErrInvalidArgument
	}
	boundary, ok := params["boundary"]
	if !ok {
		return nil, s3err.ErrInvalidArgument
	}

	mr := multipart.NewReader(r.Body, boundary)
	upload := &FormUpload{fields: map[string]string{}}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil, fmt.Errorf("httpx: multipart form has no file part")
		}
		if err != nil {
			return nil, s3err.ErrMalformedXML.WithExtra("Reason", "invalid multipart encoding")
		}

		if part.FileName() == "" {
			value, err := io.ReadAll(io.LimitReader(part, MaxBufferedBody))
			if err != nil {
				return nil, s3err.ErrInvalidArgument
			}
			upload.fields[strings.ToLower(part.FormName())] = string(value)
			continue
		}

		upload.FileName = part.FileName()
		upload.ContentType = part.Header.Get("Content-Type")
		if upload.ContentType == "" {
			upload.ContentType = "application/octet-stream"
		}
		upload.File = part
		return upload, nil
	}
}
