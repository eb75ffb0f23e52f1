// Package httpx holds the request-body plumbing the gateway needs before a
// request reaches the router or the codec: classifying the payload hash for
// signature verification, buffering a full body when signing needs to hash
// it, splicing in the aws-chunked decoder once a streaming signature has
// been seeded, and decoding multipart/form-data for browser POST uploads.
package httpx

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/sigv4"
)

// MaxBufferedBody caps how much of a request body DecodeFullBody will hold
// in memory at once. Object data itself is never buffered this way — only
// XML request bodies and the payload hash of small signed requests are.
const MaxBufferedBody = 16 << 20 // 16 MiB

// PayloadHash reports the x-amz-content-sha256 header's value and whether
// it names a streaming (aws-chunked) payload, mirroring how the signer
// classifies a request before computing its canonical form.
func PayloadHash(r *http.Request) (hash string, streaming bool) {
	hash = r.Header.Get("X-Amz-Content-Sha256")
	return hash, hash == sigv4.StreamingPayload
}

// BufferFullBody reads r.Body up to limit bytes and rewinds r.Body to a
// fresh reader over the buffered bytes, so later stages (signature hashing,
// XML decoding) can each read it from the start. GET/HEAD requests and
// already-empty bodies are returned as a nil slice without consuming
// anything.
func BufferFullBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Method == http.MethodGet || r.Method == http.MethodHead {
		return nil, nil
	}
	limited := io.LimitReader(r.Body, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, s3err.ErrIncompleteBody
	}
	if int64(len(data)) > limit {
		return nil, s3err.ErrEntityTooLarge
	}
	r.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

// SpliceChunkedBody replaces r.Body with a sigv4.ChunkedReader once the
// enclosing request's header signature has been verified, using it as the
// seed for the chunk signature chain. decodedContentLength comes from the
// required x-amz-decoded-content-length header and becomes the request's
// effective ContentLength, since the wire Content-Length instead measures
// the larger chunk-framed stream.
func SpliceChunkedBody(r *http.Request, secretKey, amzDate, date, region, seedSignature string) error {
	declared := r.Header.Get("X-Amz-Decoded-Content-Length")
	if declared == "" {
		return s3err.ErrMissingContentLength
	}
	n, err := strconv.ParseInt(declared, 10, 64)
	if err != nil || n < 0 {
		return s3err.ErrInvalidArgument
	}
	r.Body = io.NopCloser(sigv4.NewChunkedReader(r.Body, secretKey, amzDate, date, region, seedSignature))
	r.ContentLength = n
	return nil
}
