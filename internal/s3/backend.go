// Package s3 defines the host-facing backend interface s3kit dispatches
// operations to: one method per S3 operation, mirroring the schema
// registry's operation list the same way access.Checker mirrors it for
// authorization. A host (an object store, a cloud passthrough, a test
// double) implements Backend; s3kit's ops.Dispatcher never knows which
// concrete backend it is talking to.
//
// Inputs and outputs are the same map[string]any dynamic values codec
// and access already pass around — s3kit has no per-operation Go
// struct types, so Backend doesn't introduce one either. A streaming
// field (PutObject/UploadPart's Body, GetObject's response Body) is
// carried as an io.Reader/io.ReadCloser value under that field's
// ProgramName key, exactly as codec.DecodeInput documents for payload
// fields it declines to buffer itself.
package s3

import (
	"context"

	s3err "github.com/bleepstore/s3kit/internal/errors"
)

// Backend is the full set of S3 operations a host must serve.
type Backend interface {
	AbortMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error)
	CompleteMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error)
	CopyObject(ctx context.Context, input map[string]any) (map[string]any, error)
	CreateBucket(ctx context.Context, input map[string]any) (map[string]any, error)
	CreateMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucket(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketAnalyticsConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketCors(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketEncryption(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketInventoryConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketLifecycle(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketMetricsConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketOwnershipControls(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketPolicy(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketReplication(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketTagging(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteBucketWebsite(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteObject(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteObjectTagging(ctx context.Context, input map[string]any) (map[string]any, error)
	DeleteObjects(ctx context.Context, input map[string]any) (map[string]any, error)
	DeletePublicAccessBlock(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketAccelerateConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketAcl(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketCors(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketEncryption(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketLifecycle(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketLocation(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketLogging(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketNotificationConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketOwnershipControls(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketPolicy(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketPolicyStatus(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketReplication(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketRequestPayment(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketTagging(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketVersioning(ctx context.Context, input map[string]any) (map[string]any, error)
	GetBucketWebsite(ctx context.Context, input map[string]any) (map[string]any, error)
	GetObject(ctx context.Context, input map[string]any) (map[string]any, error)
	GetObjectAcl(ctx context.Context, input map[string]any) (map[string]any, error)
	GetObjectAttributes(ctx context.Context, input map[string]any) (map[string]any, error)
	GetObjectLegalHold(ctx context.Context, input map[string]any) (map[string]any, error)
	GetObjectLockConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	GetObjectRetention(ctx context.Context, input map[string]any) (map[string]any, error)
	GetObjectTagging(ctx context.Context, input map[string]any) (map[string]any, error)
	GetPublicAccessBlock(ctx context.Context, input map[string]any) (map[string]any, error)
	HeadBucket(ctx context.Context, input map[string]any) (map[string]any, error)
	HeadObject(ctx context.Context, input map[string]any) (map[string]any, error)
	ListBucketAnalyticsConfigurations(ctx context.Context, input map[string]any) (map[string]any, error)
	ListBucketIntelligentTieringConfigurations(ctx context.Context, input map[string]any) (map[string]any, error)
	ListBucketInventoryConfigurations(ctx context.Context, input map[string]any) (map[string]any, error)
	ListBucketMetricsConfigurations(ctx context.Context, input map[string]any) (map[string]any, error)
	ListBuckets(ctx context.Context, input map[string]any) (map[string]any, error)
	ListMultipartUploads(ctx context.Context, input map[string]any) (map[string]any, error)
	ListObjectVersions(ctx context.Context, input map[string]any) (map[string]any, error)
	ListObjects(ctx context.Context, input map[string]any) (map[string]any, error)
	ListObjectsV2(ctx context.Context, input map[string]any) (map[string]any, error)
	ListParts(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketAccelerateConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketAcl(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketCors(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketEncryption(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketLifecycleConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketLogging(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketNotificationConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketOwnershipControls(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketPolicy(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketReplication(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketRequestPayment(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketTagging(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketVersioning(ctx context.Context, input map[string]any) (map[string]any, error)
	PutBucketWebsite(ctx context.Context, input map[string]any) (map[string]any, error)
	PutObject(ctx context.Context, input map[string]any) (map[string]any, error)
	PutObjectAcl(ctx context.Context, input map[string]any) (map[string]any, error)
	PutObjectLegalHold(ctx context.Context, input map[string]any) (map[string]any, error)
	PutObjectLockConfiguration(ctx context.Context, input map[string]any) (map[string]any, error)
	PutObjectRetention(ctx context.Context, input map[string]any) (map[string]any, error)
	PutObjectTagging(ctx context.Context, input map[string]any) (map[string]any, error)
	PutPublicAccessBlock(ctx context.Context, input map[string]any) (map[string]any, error)
	RestoreObject(ctx context.Context, input map[string]any) (map[string]any, error)
	SelectObjectContent(ctx context.Context, input map[string]any) (map[string]any, error)
	UploadPart(ctx context.Context, input map[string]any) (map[string]any, error)
	UploadPartCopy(ctx context.Context, input map[string]any) (map[string]any, error)
}

// UnimplementedBackend embeds into a concrete Backend to provide
// NotImplemented defaults for every operation that host doesn't support,
// the same way grpc-generated "Unimplemented*Server" types do and the
// same way access.DefaultChecker does for access.Checker.
type UnimplementedBackend struct{}

func (UnimplementedBackend) AbortMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "AbortMultipartUpload")
}

func (UnimplementedBackend) CompleteMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "CompleteMultipartUpload")
}

func (UnimplementedBackend) CopyObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "CopyObject")
}

func (UnimplementedBackend) CreateBucket(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "CreateBucket")
}

func (UnimplementedBackend) CreateMultipartUpload(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "CreateMultipartUpload")
}

func (UnimplementedBackend) DeleteBucket(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucket")
}

func (UnimplementedBackend) DeleteBucketAnalyticsConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketAnalyticsConfiguration")
}

func (UnimplementedBackend) DeleteBucketCors(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketCors")
}

func (UnimplementedBackend) DeleteBucketEncryption(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketEncryption")
}

func (UnimplementedBackend) DeleteBucketInventoryConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketInventoryConfiguration")
}

func (UnimplementedBackend) DeleteBucketLifecycle(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketLifecycle")
}

func (UnimplementedBackend) DeleteBucketMetricsConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketMetricsConfiguration")
}

func (UnimplementedBackend) DeleteBucketOwnershipControls(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketOwnershipControls")
}

func (UnimplementedBackend) DeleteBucketPolicy(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketPolicy")
}

func (UnimplementedBackend) DeleteBucketReplication(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketReplication")
}

func (UnimplementedBackend) DeleteBucketTagging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketTagging")
}

func (UnimplementedBackend) DeleteBucketWebsite(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteBucketWebsite")
}

func (UnimplementedBackend) DeleteObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteObject")
}

func (UnimplementedBackend) DeleteObjectTagging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteObjectTagging")
}

func (UnimplementedBackend) DeleteObjects(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeleteObjects")
}

func (UnimplementedBackend) DeletePublicAccessBlock(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "DeletePublicAccessBlock")
}

func (UnimplementedBackend) GetBucketAccelerateConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketAccelerateConfiguration")
}

func (UnimplementedBackend) GetBucketAcl(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketAcl")
}

func (UnimplementedBackend) GetBucketCors(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketCors")
}

func (UnimplementedBackend) GetBucketEncryption(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketEncryption")
}

func (UnimplementedBackend) GetBucketLifecycle(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketLifecycle")
}

func (UnimplementedBackend) GetBucketLocation(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketLocation")
}

func (UnimplementedBackend) GetBucketLogging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketLogging")
}

func (UnimplementedBackend) GetBucketNotificationConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketNotificationConfiguration")
}

func (UnimplementedBackend) GetBucketOwnershipControls(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketOwnershipControls")
}

func (UnimplementedBackend) GetBucketPolicy(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketPolicy")
}

func (UnimplementedBackend) GetBucketPolicyStatus(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketPolicyStatus")
}

func (UnimplementedBackend) GetBucketReplication(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketReplication")
}

func (UnimplementedBackend) GetBucketRequestPayment(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketRequestPayment")
}

func (UnimplementedBackend) GetBucketTagging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketTagging")
}

func (UnimplementedBackend) GetBucketVersioning(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketVersioning")
}

func (UnimplementedBackend) GetBucketWebsite(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetBucketWebsite")
}

func (UnimplementedBackend) GetObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetObject")
}

func (UnimplementedBackend) GetObjectAcl(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetObjectAcl")
}

func (UnimplementedBackend) GetObjectAttributes(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetObjectAttributes")
}

func (UnimplementedBackend) GetObjectLegalHold(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetObjectLegalHold")
}

func (UnimplementedBackend) GetObjectLockConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetObjectLockConfiguration")
}

func (UnimplementedBackend) GetObjectRetention(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetObjectRetention")
}

func (UnimplementedBackend) GetObjectTagging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetObjectTagging")
}

func (UnimplementedBackend) GetPublicAccessBlock(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "GetPublicAccessBlock")
}

func (UnimplementedBackend) HeadBucket(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "HeadBucket")
}

func (UnimplementedBackend) HeadObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "HeadObject")
}

func (UnimplementedBackend) ListBucketAnalyticsConfigurations(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListBucketAnalyticsConfigurations")
}

func (UnimplementedBackend) ListBucketIntelligentTieringConfigurations(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListBucketIntelligentTieringConfigurations")
}

func (UnimplementedBackend) ListBucketInventoryConfigurations(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListBucketInventoryConfigurations")
}

func (UnimplementedBackend) ListBucketMetricsConfigurations(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListBucketMetricsConfigurations")
}

func (UnimplementedBackend) ListBuckets(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListBuckets")
}

func (UnimplementedBackend) ListMultipartUploads(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListMultipartUploads")
}

func (UnimplementedBackend) ListObjectVersions(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListObjectVersions")
}

func (UnimplementedBackend) ListObjects(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListObjects")
}

func (UnimplementedBackend) ListObjectsV2(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListObjectsV2")
}

func (UnimplementedBackend) ListParts(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "ListParts")
}

func (UnimplementedBackend) PutBucketAccelerateConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketAccelerateConfiguration")
}

func (UnimplementedBackend) PutBucketAcl(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketAcl")
}

func (UnimplementedBackend) PutBucketCors(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketCors")
}

func (UnimplementedBackend) PutBucketEncryption(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketEncryption")
}

func (UnimplementedBackend) PutBucketLifecycleConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketLifecycleConfiguration")
}

func (UnimplementedBackend) PutBucketLogging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketLogging")
}

func (UnimplementedBackend) PutBucketNotificationConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketNotificationConfiguration")
}

func (UnimplementedBackend) PutBucketOwnershipControls(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketOwnershipControls")
}

func (UnimplementedBackend) PutBucketPolicy(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketPolicy")
}

func (UnimplementedBackend) PutBucketReplication(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketReplication")
}

func (UnimplementedBackend) PutBucketRequestPayment(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketRequestPayment")
}

func (UnimplementedBackend) PutBucketTagging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketTagging")
}

func (UnimplementedBackend) PutBucketVersioning(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketVersioning")
}

func (UnimplementedBackend) PutBucketWebsite(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutBucketWebsite")
}

func (UnimplementedBackend) PutObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutObject")
}

func (UnimplementedBackend) PutObjectAcl(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutObjectAcl")
}

func (UnimplementedBackend) PutObjectLegalHold(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutObjectLegalHold")
}

func (UnimplementedBackend) PutObjectLockConfiguration(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutObjectLockConfiguration")
}

func (UnimplementedBackend) PutObjectRetention(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutObjectRetention")
}

func (UnimplementedBackend) PutObjectTagging(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutObjectTagging")
}

func (UnimplementedBackend) PutPublicAccessBlock(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "PutPublicAccessBlock")
}

func (UnimplementedBackend) RestoreObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "RestoreObject")
}

func (UnimplementedBackend) SelectObjectContent(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "SelectObjectContent")
}

func (UnimplementedBackend) UploadPart(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "UploadPart")
}

func (UnimplementedBackend) UploadPartCopy(ctx context.Context, input map[string]any) (map[string]any, error) {
	return nil, s3err.ErrNotImplemented.WithExtra("operation", "UploadPartCopy")
}

// Call invokes the Backend method named by op, the single dispatch
// point ops.Dispatcher uses so it never needs a reflection-based call.
func Call(ctx context.Context, b Backend, op string, input map[string]any) (map[string]any, error) {
	switch op {
	case "AbortMultipartUpload":
		return b.AbortMultipartUpload(ctx, input)
	case "CompleteMultipartUpload":
		return b.CompleteMultipartUpload(ctx, input)
	case "CopyObject":
		return b.CopyObject(ctx, input)
	case "CreateBucket":
		return b.CreateBucket(ctx, input)
	case "CreateMultipartUpload":
		return b.CreateMultipartUpload(ctx, input)
	case "DeleteBucket":
		return b.DeleteBucket(ctx, input)
	case "DeleteBucketAnalyticsConfiguration":
		return b.DeleteBucketAnalyticsConfiguration(ctx, input)
	case "DeleteBucketCors":
		return b.DeleteBucketCors(ctx, input)
	case "DeleteBucketEncryption":
		return b.DeleteBucketEncryption(ctx, input)
	case "DeleteBucketInventoryConfiguration":
		return b.DeleteBucketInventoryConfiguration(ctx, input)
	case "DeleteBucketLifecycle":
		return b.DeleteBucketLifecycle(ctx, input)
	case "DeleteBucketMetricsConfiguration":
		return b.DeleteBucketMetricsConfiguration(ctx, input)
	case "DeleteBucketOwnershipControls":
		return b.DeleteBucketOwnershipControls(ctx, input)
	case "DeleteBucketPolicy":
		return b.DeleteBucketPolicy(ctx, input)
	case "DeleteBucketReplication":
		return b.DeleteBucketReplication(ctx, input)
	case "DeleteBucketTagging":
		return b.DeleteBucketTagging(ctx, input)
	case "DeleteBucketWebsite":
		return b.DeleteBucketWebsite(ctx, input)
	case "DeleteObject":
		return b.DeleteObject(ctx, input)
	case "DeleteObjectTagging":
		return b.DeleteObjectTagging(ctx, input)
	case "DeleteObjects":
		return b.DeleteObjects(ctx, input)
	case "DeletePublicAccessBlock":
		return b.DeletePublicAccessBlock(ctx, input)
	case "GetBucketAccelerateConfiguration":
		return b.GetBucketAccelerateConfiguration(ctx, input)
	case "GetBucketAcl":
		return b.GetBucketAcl(ctx, input)
	case "GetBucketCors":
		return b.GetBucketCors(ctx, input)
	case "GetBucketEncryption":
		return b.GetBucketEncryption(ctx, input)
	case "GetBucketLifecycle":
		return b.GetBucketLifecycle(ctx, input)
	case "GetBucketLocation":
		return b.GetBucketLocation(ctx, input)
	case "GetBucketLogging":
		return b.GetBucketLogging(ctx, input)
	case "GetBucketNotificationConfiguration":
		return b.GetBucketNotificationConfiguration(ctx, input)
	case "GetBucketOwnershipControls":
		return b.GetBucketOwnershipControls(ctx, input)
	case "GetBucketPolicy":
		return b.GetBucketPolicy(ctx, input)
	case "GetBucketPolicyStatus":
		return b.GetBucketPolicyStatus(ctx, input)
	case "GetBucketReplication":
		return b.GetBucketReplication(ctx, input)
	case "GetBucketRequestPayment":
		return b.GetBucketRequestPayment(ctx, input)
	case "GetBucketTagging":
		return b.GetBucketTagging(ctx, input)
	case "GetBucketVersioning":
		return b.GetBucketVersioning(ctx, input)
	case "GetBucketWebsite":
		return b.GetBucketWebsite(ctx, input)
	case "GetObject":
		return b.GetObject(ctx, input)
	case "GetObjectAcl":
		return b.GetObjectAcl(ctx, input)
	case "GetObjectAttributes":
		return b.GetObjectAttributes(ctx, input)
	case "GetObjectLegalHold":
		return b.GetObjectLegalHold(ctx, input)
	case "GetObjectLockConfiguration":
		return b.GetObjectLockConfiguration(ctx, input)
	case "GetObjectRetention":
		return b.GetObjectRetention(ctx, input)
	case "GetObjectTagging":
		return b.GetObjectTagging(ctx, input)
	case "GetPublicAccessBlock":
		return b.GetPublicAccessBlock(ctx, input)
	case "HeadBucket":
		return b.HeadBucket(ctx, input)
	case "HeadObject":
		return b.HeadObject(ctx, input)
	case "ListBucketAnalyticsConfigurations":
		return b.ListBucketAnalyticsConfigurations(ctx, input)
	case "ListBucketIntelligentTieringConfigurations":
		return b.ListBucketIntelligentTieringConfigurations(ctx, input)
	case "ListBucketInventoryConfigurations":
		return b.ListBucketInventoryConfigurations(ctx, input)
	case "ListBucketMetricsConfigurations":
		return b.ListBucketMetricsConfigurations(ctx, input)
	case "ListBuckets":
		return b.ListBuckets(ctx, input)
	case "ListMultipartUploads":
		return b.ListMultipartUploads(ctx, input)
	case "ListObjectVersions":
		return b.ListObjectVersions(ctx, input)
	case "ListObjects":
		return b.ListObjects(ctx, input)
	case "ListObjectsV2":
		return b.ListObjectsV2(ctx, input)
	case "ListParts":
		return b.ListParts(ctx, input)
	case "PutBucketAccelerateConfiguration":
		return b.PutBucketAccelerateConfiguration(ctx, input)
	case "PutBucketAcl":
		return b.PutBucketAcl(ctx, input)
	case "PutBucketCors":
		return b.PutBucketCors(ctx, input)
	case "PutBucketEncryption":
		return b.PutBucketEncryption(ctx, input)
	case "PutBucketLifecycleConfiguration":
		return b.PutBucketLifecycleConfiguration(ctx, input)
	case "PutBucketLogging":
		return b.PutBucketLogging(ctx, input)
	case "PutBucketNotificationConfiguration":
		return b.PutBucketNotificationConfiguration(ctx, input)
	case "PutBucketOwnershipControls":
		return b.PutBucketOwnershipControls(ctx, input)
	case "PutBucketPolicy":
		return b.PutBucketPolicy(ctx, input)
	case "PutBucketReplication":
		return b.PutBucketReplication(ctx, input)
	case "PutBucketRequestPayment":
		return b.PutBucketRequestPayment(ctx, input)
	case "PutBucketTagging":
		return b.PutBucketTagging(ctx, input)
	case "PutBucketVersioning":
		return b.PutBucketVersioning(ctx, input)
	case "PutBucketWebsite":
		return b.PutBucketWebsite(ctx, input)
	case "PutObject":
		return b.PutObject(ctx, input)
	case "PutObjectAcl":
		return b.PutObjectAcl(ctx, input)
	case "PutObjectLegalHold":
		return b.PutObjectLegalHold(ctx, input)
	case "PutObjectLockConfiguration":
		return b.PutObjectLockConfiguration(ctx, input)
	case "PutObjectRetention":
		return b.PutObjectRetention(ctx, input)
	case "PutObjectTagging":
		return b.PutObjectTagging(ctx, input)
	case "PutPublicAccessBlock":
		return b.PutPublicAccessBlock(ctx, input)
	case "RestoreObject":
		return b.RestoreObject(ctx, input)
	case "SelectObjectContent":
		return b.SelectObjectContent(ctx, input)
	case "UploadPart":
		return b.UploadPart(ctx, input)
	case "UploadPartCopy":
		return b.UploadPartCopy(ctx, input)
	default:
		return nil, s3err.ErrNotImplemented.WithExtra("operation", op)
	}
}
