package ops

import (
	"net/http"
	"time"

	"github.com/bleepstore/s3kit/internal/codec"
	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/registry"
	s3 "github.com/bleepstore/s3kit/internal/s3"
	"github.com/bleepstore/s3kit/internal/xmlutil"
)

// completeMultipartHeartbeat is how often a keep-alive byte is written
// while CompleteMultipartUpload's backend call is still running, per
// spec.md's control pattern for this operation.
const completeMultipartHeartbeat = 100 * time.Millisecond

// statusTrailer carries CompleteMultipartUpload's outcome. The status
// line is committed to 200 before the backend call returns, so success
// or failure can only be reported as a trailer, never a status code.
const statusTrailer = "X-Amz-S3kit-Status"

// dispatchCompleteMultipartUpload is CompleteMultipartUpload's own response
// path: because assembling the finished object can take arbitrarily
// long, the 200 status and headers commit immediately, whitespace bytes
// keep the connection alive every completeMultipartHeartbeat while the
// backend call runs in the background, and the XML body (a success
// document or a serialized <Error>) is written once it returns. This is
// the only operation with this control pattern.
func (d *Dispatcher) dispatchCompleteMultipartUpload(w http.ResponseWriter, r *http.Request, op *registry.Operation, input map[string]any) {
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Trailer", statusTrailer)
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	type result struct {
		output map[string]any
		err    error
	}
	done := make(chan result, 1)
	go func() {
		output, err := s3.Call(r.Context(), d.Backend, op.Name, input)
		done <- result{output: output, err: err}
	}()

	ticker := time.NewTicker(completeMultipartHeartbeat)
	defer ticker.Stop()

	var res result
loop:
	for {
		select {
		case res = <-done:
			break loop
		case <-ticker.C:
			w.Write([]byte(" "))
			if flusher != nil {
				flusher.Flush()
			}
		}
	}

	if res.err != nil {
		s3Err, ok := res.err.(*s3err.S3Error)
		if !ok {
			s3Err = s3err.ErrInternalError
		}
		requestID := w.Header().Get("x-amz-request-id")
		xmlutil.EncodeErrorBody(w, requestID, r.URL.Path, s3Err)
		w.Header().Set(statusTrailer, s3Err.Code)
		return
	}

	applyResponseOverrides(op, input, res.output)
	if err := codec.EncodeOutput(d.Registry, op, w, res.output); err != nil {
		w.Header().Set(statusTrailer, s3err.ErrInternalError.Code)
		return
	}
	w.Header().Set(statusTrailer, "200")
}
