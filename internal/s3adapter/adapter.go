// Package s3adapter wraps a metadata.MetadataStore and storage.StorageBackend
// pair into an s3.Backend, the interface internal/ops.Dispatcher calls
// through. It carries the same crash-only temp-file/fsync/rename PutObject
// discipline and the same metadata-then-storage commit order the old
// hand-written per-operation handlers used, generalized onto the registry's
// map[string]any input/output shape instead of per-operation request
// structs.
//
// Only the operations the storage/metadata layer actually models (buckets
// and objects as data, multipart upload assembly) are implemented; the rest
// of the 82-operation surface (bucket policies, lifecycle rules,
// replication, object lock, inventory, analytics) has no corresponding
// concept in that layer and is left to s3.UnimplementedBackend's
// ErrNotImplemented.
package s3adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/metadata"
	s3 "github.com/bleepstore/s3kit/internal/s3"
	"github.com/bleepstore/s3kit/internal/storage"
)

// Backend adapts a metadata.MetadataStore and storage.StorageBackend pair
// into s3.Backend.
type Backend struct {
	s3.UnimplementedBackend

	Meta         metadata.MetadataStore
	Store        storage.StorageBackend
	Region       string
	OwnerID      string
	OwnerDisplay string
}

// New builds a Backend over an already-initialized metadata store and
// storage backend, the same dependency pair cmd/bleepstore/main.go
// constructs for the teacher's server.New.
func New(meta metadata.MetadataStore, store storage.StorageBackend, region, ownerID, ownerDisplay string) *Backend {
	return &Backend{Meta: meta, Store: store, Region: region, OwnerID: ownerID, OwnerDisplay: ownerDisplay}
}

func str(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}

func (b *Backend) owner() map[string]any {
	return map[string]any{"ID": b.OwnerID, "DisplayName": b.OwnerDisplay}
}

func (b *Backend) CreateBucket(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := str(input, "Bucket")
	exists, err := b.Meta.BucketExists(ctx, bucket)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if exists {
		return nil, s3err.ErrBucketAlreadyExists
	}
	if err := b.Store.CreateBucket(ctx, bucket); err != nil {
		return nil, s3err.ErrInternalError
	}
	rec := &metadata.BucketRecord{
		Name:         bucket,
		Region:       b.Region,
		OwnerID:      b.OwnerID,
		OwnerDisplay: b.OwnerDisplay,
		CreatedAt:    time.Now().UTC(),
	}
	if err := b.Meta.CreateBucket(ctx, rec); err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{"Location": "/" + bucket}, nil
}

func (b *Backend) DeleteBucket(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := str(input, "Bucket")
	if err := b.Meta.DeleteBucket(ctx, bucket); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, s3err.ErrNoSuchBucket
		}
		if strings.Contains(err.Error(), "not empty") {
			return nil, s3err.ErrBucketNotEmpty
		}
		return nil, s3err.ErrInternalError
	}
	// Storage-side directory removal is best effort, matching
	// handlers/bucket.go: the bucket is already gone from metadata.
	b.Store.DeleteBucket(ctx, bucket)
	return map[string]any{}, nil
}

func (b *Backend) HeadBucket(ctx context.Context, input map[string]any) (map[string]any, error) {
	exists, err := b.Meta.BucketExists(ctx, str(input, "Bucket"))
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if !exists {
		return nil, s3err.ErrNoSuchBucket
	}
	return map[string]any{"BucketRegion": b.Region}, nil
}

func (b *Backend) ListBuckets(ctx context.Context, input map[string]any) (map[string]any, error) {
	buckets, err := b.Meta.ListBuckets(ctx, b.OwnerID)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	list := make([]any, len(buckets))
	for i, bk := range buckets {
		list[i] = map[string]any{"Name": bk.Name, "CreationDate": bk.CreatedAt}
	}
	return map[string]any{"Owner": b.owner(), "Buckets": list}, nil
}

func (b *Backend) requireBucket(ctx context.Context, bucket string) error {
	exists, err := b.Meta.BucketExists(ctx, bucket)
	if err != nil {
		return s3err.ErrInternalError
	}
	if !exists {
		return s3err.ErrNoSuchBucket
	}
	return nil
}

func (b *Backend) PutObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	if err := b.requireBucket(ctx, bucket); err != nil {
		return nil, err
	}
	body, _ := input["Body"].(io.Reader)
	if body == nil {
		body = strings.NewReader("")
	}
	size, _ := input["ContentLength"].(int64)

	written, etag, err := b.Store.PutObject(ctx, bucket, key, body, size)
	if err != nil {
		return nil, s3err.ErrInternalError
	}

	contentType := str(input, "ContentType")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	userMeta, _ := input["Metadata"].(map[string]string)
	obj := &metadata.ObjectRecord{
		Bucket:          bucket,
		Key:             key,
		Size:            written,
		ETag:            etag,
		ContentType:     contentType,
		ContentEncoding: str(input, "ContentEncoding"),
		UserMetadata:    userMeta,
		LastModified:    time.Now().UTC(),
	}
	if err := b.Meta.PutObject(ctx, obj); err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{"ETag": etag}, nil
}

func (b *Backend) GetObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	rec, err := b.Meta.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if rec == nil {
		return nil, s3err.ErrNoSuchKey
	}
	body, size, etag, err := b.Store.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, s3err.ErrInternalError
	}

	out := map[string]any{
		"Body":          body,
		"ContentLength": size,
		"ContentType":   rec.ContentType,
		"ETag":          etag,
		"LastModified":  rec.LastModified,
	}
	if rec.UserMetadata != nil {
		out["Metadata"] = rec.UserMetadata
	}
	applyByteRange(out, str(input, "Range"), size)
	return out, nil
}

// applyByteRange truncates a GetObject response to a single-range
// "bytes=start-end" request, the same single-range subset
// internal/handlers' object.go honors: multi-range and suffix-length
// ("bytes=-N") forms are left to the backend's own Range handling if
// ever extended.
func applyByteRange(out map[string]any, rng string, total int64) {
	if rng == "" {
		return
	}
	start, end, ok := parseSingleRange(rng, total)
	if !ok {
		return
	}
	body, _ := out["Body"].(io.ReadCloser)
	if body == nil {
		return
	}
	out["Body"] = io.NopCloser(io.LimitReader(body, end-start+1))
	out["ContentLength"] = end - start + 1
	out["ContentRange"] = contentRangeHeader(start, end, total)
}

func (b *Backend) HeadObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	rec, err := b.Meta.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if rec == nil {
		return nil, s3err.ErrNoSuchKey
	}
	out := map[string]any{
		"ContentLength": rec.Size,
		"ContentType":   rec.ContentType,
		"ETag":          rec.ETag,
		"LastModified":  rec.LastModified,
	}
	if rec.UserMetadata != nil {
		out["Metadata"] = rec.UserMetadata
	}
	return out, nil
}

func (b *Backend) DeleteObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	if err := b.Meta.DeleteObject(ctx, bucket, key); err != nil {
		return nil, s3err.ErrInternalError
	}
	if err := b.Store.DeleteObject(ctx, bucket, key); err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{}, nil
}

func (b *Backend) DeleteObjects(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := str(input, "Bucket")
	del, _ := input["Delete"].(map[string]any)
	objects, _ := del["Objects"].([]any)

	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		obj, _ := o.(map[string]any)
		if k, _ := obj["Key"].(string); k != "" {
			keys = append(keys, k)
		}
	}
	deleted, _ := b.Meta.DeleteObjectsMeta(ctx, bucket, keys)
	deletedSet := make(map[string]bool, len(deleted))
	for _, k := range deleted {
		deletedSet[k] = true
		b.Store.DeleteObject(ctx, bucket, k)
	}

	result := make([]any, 0, len(deleted))
	for _, k := range deleted {
		result = append(result, map[string]any{"Key": k})
	}
	errs := make([]any, 0)
	for _, k := range keys {
		if !deletedSet[k] {
			errs = append(errs, map[string]any{"Key": k, "Code": "InternalError", "Message": "failed to delete"})
		}
	}
	out := map[string]any{"Deleted": result}
	if len(errs) > 0 {
		out["Errors"] = errs
	}
	return out, nil
}

func (b *Backend) CopyObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	dstBucket, dstKey := str(input, "Bucket"), str(input, "Key")
	srcBucket, srcKey := parseCopySource(str(input, "CopySource"))

	srcRec, err := b.Meta.GetObject(ctx, srcBucket, srcKey)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if srcRec == nil {
		return nil, s3err.ErrNoSuchKey
	}
	etag, err := b.Store.CopyObject(ctx, srcBucket, srcKey, dstBucket, dstKey)
	if err != nil {
		return nil, s3err.ErrInternalError
	}

	now := time.Now().UTC()
	dstRec := *srcRec
	dstRec.Bucket, dstRec.Key, dstRec.ETag, dstRec.LastModified = dstBucket, dstKey, etag, now
	if err := b.Meta.PutObject(ctx, &dstRec); err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{
		"CopyObjectResult": map[string]any{"ETag": etag, "LastModified": now},
	}, nil
}

func (b *Backend) ListObjects(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := str(input, "Bucket")
	maxKeys, _ := input["MaxKeys"].(int)
	if maxKeys <= 0 {
		maxKeys = 1000
	}
	res, err := b.Meta.ListObjects(ctx, bucket, metadata.ListObjectsOptions{
		Prefix:    str(input, "Prefix"),
		Delimiter: str(input, "Delimiter"),
		Marker:    str(input, "Marker"),
		MaxKeys:   maxKeys,
	})
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{
		"Name":           bucket,
		"Prefix":         str(input, "Prefix"),
		"Marker":         str(input, "Marker"),
		"NextMarker":     res.NextMarker,
		"MaxKeys":        maxKeys,
		"IsTruncated":    res.IsTruncated,
		"Contents":       objectSummaries(res.Objects),
		"CommonPrefixes": commonPrefixes(res.CommonPrefixes),
	}, nil
}

func (b *Backend) ListObjectsV2(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := str(input, "Bucket")
	maxKeys, _ := input["MaxKeys"].(int)
	if maxKeys <= 0 {
		maxKeys = 1000
	}
	res, err := b.Meta.ListObjects(ctx, bucket, metadata.ListObjectsOptions{
		Prefix:            str(input, "Prefix"),
		Delimiter:         str(input, "Delimiter"),
		StartAfter:        str(input, "StartAfter"),
		ContinuationToken: str(input, "ContinuationToken"),
		MaxKeys:           maxKeys,
	})
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{
		"Name":                  bucket,
		"Prefix":                str(input, "Prefix"),
		"KeyCount":              len(res.Objects),
		"MaxKeys":               maxKeys,
		"ContinuationToken":     str(input, "ContinuationToken"),
		"NextContinuationToken": res.NextContinuationToken,
		"StartAfter":            str(input, "StartAfter"),
		"IsTruncated":           res.IsTruncated,
		"Contents":              objectSummaries(res.Objects),
		"CommonPrefixes":        commonPrefixes(res.CommonPrefixes),
	}, nil
}

func objectSummaries(objs []metadata.ObjectRecord) []any {
	out := make([]any, len(objs))
	for i, o := range objs {
		out[i] = map[string]any{
			"Key":          o.Key,
			"LastModified": o.LastModified,
			"ETag":         o.ETag,
			"Size":         o.Size,
		}
	}
	return out
}

func commonPrefixes(prefixes []string) []any {
	out := make([]any, len(prefixes))
	for i, p := range prefixes {
		out[i] = map[string]any{"Prefix": p}
	}
	return out
}

func (b *Backend) CreateMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	if err := b.requireBucket(ctx, bucket); err != nil {
		return nil, err
	}
	rec := &metadata.MultipartUploadRecord{
		Bucket:       bucket,
		Key:          key,
		ContentType:  str(input, "ContentType"),
		OwnerID:      b.OwnerID,
		OwnerDisplay: b.OwnerDisplay,
		InitiatedAt:  time.Now().UTC(),
	}
	uploadID, err := b.Meta.CreateMultipartUpload(ctx, rec)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{"Bucket": bucket, "Key": key, "UploadID": uploadID}, nil
}

func (b *Backend) UploadPart(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	uploadID, _ := input["UploadID"].(string)
	partNumber, _ := input["PartNumber"].(int)

	upload, err := b.Meta.GetMultipartUpload(ctx, bucket, key, uploadID)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if upload == nil {
		return nil, s3err.ErrNoSuchUpload
	}

	body, _ := input["Body"].(io.Reader)
	size, _ := input["ContentLength"].(int64)
	etag, err := b.Store.PutPart(ctx, bucket, key, uploadID, partNumber, body, size)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if err := b.Meta.PutPart(ctx, &metadata.PartRecord{
		UploadID:     uploadID,
		PartNumber:   partNumber,
		Size:         size,
		ETag:         etag,
		LastModified: time.Now().UTC(),
	}); err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{"ETag": etag}, nil
}

func (b *Backend) CompleteMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	uploadID, _ := input["UploadID"].(string)

	upload, err := b.Meta.GetMultipartUpload(ctx, bucket, key, uploadID)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if upload == nil {
		return nil, s3err.ErrNoSuchUpload
	}

	completed, _ := input["MultipartUpload"].(map[string]any)
	parts, _ := completed["Parts"].([]any)
	partNumbers := make([]int, 0, len(parts))
	for _, p := range parts {
		part, _ := p.(map[string]any)
		// CompletedPart.PartNumber arrives as the raw XML chardata
		// string: i32/i64 have no registered shape of their own, so
		// codec's XML decoder never parses them into a Go int.
		if s, ok := part["PartNumber"].(string); ok {
			if n, err := strconv.Atoi(s); err == nil {
				partNumbers = append(partNumbers, n)
			}
		}
	}
	if len(partNumbers) == 0 {
		return nil, s3err.ErrInvalidRequest
	}

	records, err := b.Meta.GetPartsForCompletion(ctx, uploadID, partNumbers)
	if err != nil {
		return nil, s3err.ErrInvalidPart
	}
	var totalSize int64
	for _, r := range records {
		totalSize += r.Size
	}

	etag, err := b.Store.AssembleParts(ctx, bucket, key, uploadID, partNumbers)
	if err != nil {
		return nil, s3err.ErrInternalError
	}

	obj := &metadata.ObjectRecord{
		Bucket:       bucket,
		Key:          key,
		Size:         totalSize,
		ETag:         etag,
		ContentType:  upload.ContentType,
		UserMetadata: upload.UserMetadata,
		LastModified: time.Now().UTC(),
	}
	if err := b.Meta.CompleteMultipartUpload(ctx, bucket, key, uploadID, obj); err != nil {
		return nil, s3err.ErrInternalError
	}
	if err := b.Store.DeleteParts(ctx, bucket, key, uploadID); err != nil {
		return nil, s3err.ErrInternalError
	}

	return map[string]any{
		"Location": "/" + bucket + "/" + key,
		"Bucket":   bucket,
		"Key":      key,
		"ETag":     etag,
	}, nil
}

func (b *Backend) AbortMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket, key := str(input, "Bucket"), str(input, "Key")
	uploadID, _ := input["UploadID"].(string)
	if err := b.Meta.AbortMultipartUpload(ctx, bucket, key, uploadID); err != nil {
		return nil, s3err.ErrNoSuchUpload
	}
	if err := b.Store.DeleteParts(ctx, bucket, key, uploadID); err != nil {
		return nil, s3err.ErrInternalError
	}
	return map[string]any{}, nil
}

func (b *Backend) ListMultipartUploads(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := str(input, "Bucket")
	maxUploads, _ := input["MaxUploads"].(int)
	if maxUploads <= 0 {
		maxUploads = 1000
	}
	res, err := b.Meta.ListMultipartUploads(ctx, bucket, metadata.ListUploadsOptions{
		KeyMarker:      str(input, "KeyMarker"),
		UploadIDMarker: str(input, "UploadIDMarker"),
		Prefix:         str(input, "Prefix"),
		Delimiter:      str(input, "Delimiter"),
		MaxUploads:     maxUploads,
	})
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	uploads := make([]any, len(res.Uploads))
	for i, u := range res.Uploads {
		uploads[i] = map[string]any{
			"Key":       u.Key,
			"UploadId":  u.UploadID,
			"Initiator": map[string]any{"ID": u.OwnerID, "DisplayName": u.OwnerDisplay},
			"Owner":     map[string]any{"ID": u.OwnerID, "DisplayName": u.OwnerDisplay},
			"Initiated": u.InitiatedAt,
		}
	}
	return map[string]any{
		"Bucket":             bucket,
		"KeyMarker":          str(input, "KeyMarker"),
		"UploadIdMarker":     str(input, "UploadIDMarker"),
		"NextKeyMarker":      res.NextKeyMarker,
		"NextUploadIdMarker": res.NextUploadIDMarker,
		"MaxUploads":         maxUploads,
		"Uploads":            uploads,
		"CommonPrefixes":     commonPrefixes(res.CommonPrefixes),
		"IsTruncated":        res.IsTruncated,
	}, nil
}

func (b *Backend) ListParts(ctx context.Context, input map[string]any) (map[string]any, error) {
	uploadID, _ := input["UploadID"].(string)
	partNumberMarker, _ := input["PartNumberMarker"].(int)
	maxParts, _ := input["MaxParts"].(int)
	if maxParts <= 0 {
		maxParts = 1000
	}
	res, err := b.Meta.ListParts(ctx, uploadID, metadata.ListPartsOptions{
		PartNumberMarker: partNumberMarker,
		MaxParts:         maxParts,
	})
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	parts := make([]any, len(res.Parts))
	for i, p := range res.Parts {
		parts[i] = map[string]any{
			"PartNumber":   p.PartNumber,
			"LastModified": p.LastModified,
			"ETag":         p.ETag,
			"Size":         p.Size,
		}
	}
	return map[string]any{
		"Bucket":               str(input, "Bucket"),
		"Key":                  str(input, "Key"),
		"UploadId":             uploadID,
		"PartNumberMarker":     partNumberMarker,
		"NextPartNumberMarker": res.NextPartNumberMarker,
		"MaxParts":             maxParts,
		"Parts":                parts,
		"IsTruncated":          res.IsTruncated,
	}, nil
}

// parseCopySource splits the x-amz-copy-source header's "/bucket/key"
// form (the URL-encoded-path form CopyObject's CopySource carries) into
// its bucket and key parts.
func parseCopySource(source string) (bucket, key string) {
	source = strings.TrimPrefix(source, "/")
	idx := strings.IndexByte(source, '/')
	if idx < 0 {
		return source, ""
	}
	return source[:idx], source[idx+1:]
}

// parseSingleRange parses a "bytes=start-end" Range header value,
// clamping end to the object's size. Multi-range and suffix-length
// ("bytes=-N") forms are not satisfied; ok is false for those so the
// caller falls back to returning the full object.
func parseSingleRange(rng string, size int64) (start, end int64, ok bool) {
	rng = strings.TrimPrefix(rng, "bytes=")
	if strings.Contains(rng, ",") || strings.HasPrefix(rng, "-") {
		return 0, 0, false
	}
	parts := strings.SplitN(rng, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 || start >= size {
		return 0, 0, false
	}
	if parts[1] == "" {
		end = size - 1
	} else {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || end < start {
			return 0, 0, false
		}
	}
	if end >= size {
		end = size - 1
	}
	return start, end, true
}

func contentRangeHeader(start, end, size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", start, end, size)
}
