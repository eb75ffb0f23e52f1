// Package access implements the per-operation authorization hook point
// the dispatcher calls after an operation's input has been decoded: a
// generic check run against every request, plus one method per S3
// operation a host can override, all defaulting to "allow" the way
// Rust's async_trait default methods do. Checker mirrors that shape as
// a plain Go interface; DefaultChecker is the embeddable
// every-method-returns-nil base a host embeds and selectively
// overrides, the same pattern generated gRPC/Connect server interfaces
// use for "unimplemented" defaults.
package access

import (
	"context"

	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/sigv4"
)

// Context carries the fields every check needs regardless of operation:
// the resolved operation name, the request's bucket/key (either may be
// empty depending on the operation's path shape), and the caller's
// credential, nil for an anonymous request.
type Context struct {
	OperationName string
	Bucket        string
	Key           string
	Credential    *sigv4.Credential
}

// Request pairs a Context with the operation's decoded input, the way
// S3Request<Input> does in the original: the generic, pre-deserialize
// check only ever sees Context, but every per-operation method gets the
// full decoded Value tree alongside it.
type Request struct {
	*Context
	Input map[string]any
}

// DefaultCheck rejects anonymous requests. It runs before an operation's
// input is deserialized and before any per-operation method, so it only
// has access to the request's credential, bucket, and key.
func DefaultCheck(acx *Context) error {
	if acx.Credential == nil {
		return s3err.ErrAccessDenied
	}
	return nil
}

// Checker authorizes S3 requests: DefaultCheck runs first for every
// operation, then the matching per-operation method below, so a host can
// tighten or loosen individual operations without reimplementing the
// other 81.
type Checker interface {
	// Check is the generic, pre-deserialize check every operation runs
	// first; the default implementation rejects anonymous requests.
	Check(ctx context.Context, acx *Context) error

	AbortMultipartUpload(ctx context.Context, req *Request) error
	CompleteMultipartUpload(ctx context.Context, req *Request) error
	CopyObject(ctx context.Context, req *Request) error
	CreateBucket(ctx context.Context, req *Request) error
	CreateMultipartUpload(ctx context.Context, req *Request) error
	DeleteBucket(ctx context.Context, req *Request) error
	DeleteBucketAnalyticsConfiguration(ctx context.Context, req *Request) error
	DeleteBucketCors(ctx context.Context, req *Request) error
	DeleteBucketEncryption(ctx context.Context, req *Request) error
	DeleteBucketInventoryConfiguration(ctx context.Context, req *Request) error
	DeleteBucketLifecycle(ctx context.Context, req *Request) error
	DeleteBucketMetricsConfiguration(ctx context.Context, req *Request) error
	DeleteBucketOwnershipControls(ctx context.Context, req *Request) error
	DeleteBucketPolicy(ctx context.Context, req *Request) error
	DeleteBucketReplication(ctx context.Context, req *Request) error
	DeleteBucketTagging(ctx context.Context, req *Request) error
	DeleteBucketWebsite(ctx context.Context, req *Request) error
	DeleteObject(ctx context.Context, req *Request) error
	DeleteObjectTagging(ctx context.Context, req *Request) error
	DeleteObjects(ctx context.Context, req *Request) error
	DeletePublicAccessBlock(ctx context.Context, req *Request) error
	GetBucketAccelerateConfiguration(ctx context.Context, req *Request) error
	GetBucketAcl(ctx context.Context, req *Request) error
	GetBucketCors(ctx context.Context, req *Request) error
	GetBucketEncryption(ctx context.Context, req *Request) error
	GetBucketLifecycle(ctx context.Context, req *Request) error
	GetBucketLocation(ctx context.Context, req *Request) error
	GetBucketLogging(ctx context.Context, req *Request) error
	GetBucketNotificationConfiguration(ctx context.Context, req *Request) error
	GetBucketOwnershipControls(ctx context.Context, req *Request) error
	GetBucketPolicy(ctx context.Context, req *Request) error
	GetBucketPolicyStatus(ctx context.Context, req *Request) error
	GetBucketReplication(ctx context.Context, req *Request) error
	GetBucketRequestPayment(ctx context.Context, req *Request) error
	GetBucketTagging(ctx context.Context, req *Request) error
	GetBucketVersioning(ctx context.Context, req *Request) error
	GetBucketWebsite(ctx context.Context, req *Request) error
	GetObject(ctx context.Context, req *Request) error
	GetObjectAcl(ctx context.Context, req *Request) error
	GetObjectAttributes(ctx context.Context, req *Request) error
	GetObjectLegalHold(ctx context.Context, req *Request) error
	GetObjectLockConfiguration(ctx context.Context, req *Request) error
	GetObjectRetention(ctx context.Context, req *Request) error
	GetObjectTagging(ctx context.Context, req *Request) error
	GetPublicAccessBlock(ctx context.Context, req *Request) error
	HeadBucket(ctx context.Context, req *Request) error
	HeadObject(ctx context.Context, req *Request) error
	ListBucketAnalyticsConfigurations(ctx context.Context, req *Request) error
	ListBucketIntelligentTieringConfigurations(ctx context.Context, req *Request) error
	ListBucketInventoryConfigurations(ctx context.Context, req *Request) error
	ListBucketMetricsConfigurations(ctx context.Context, req *Request) error
	ListBuckets(ctx context.Context, req *Request) error
	ListMultipartUploads(ctx context.Context, req *Request) error
	ListObjectVersions(ctx context.Context, req *Request) error
	ListObjects(ctx context.Context, req *Request) error
	ListObjectsV2(ctx context.Context, req *Request) error
	ListParts(ctx context.Context, req *Request) error
	PutBucketAccelerateConfiguration(ctx context.Context, req *Request) error
	PutBucketAcl(ctx context.Context, req *Request) error
	PutBucketCors(ctx context.Context, req *Request) error
	PutBucketEncryption(ctx context.Context, req *Request) error
	PutBucketLifecycleConfiguration(ctx context.Context, req *Request) error
	PutBucketLogging(ctx context.Context, req *Request) error
	PutBucketNotificationConfiguration(ctx context.Context, req *Request) error
	PutBucketOwnershipControls(ctx context.Context, req *Request) error
	PutBucketPolicy(ctx context.Context, req *Request) error
	PutBucketReplication(ctx context.Context, req *Request) error
	PutBucketRequestPayment(ctx context.Context, req *Request) error
	PutBucketTagging(ctx context.Context, req *Request) error
	PutBucketVersioning(ctx context.Context, req *Request) error
	PutBucketWebsite(ctx context.Context, req *Request) error
	PutObject(ctx context.Context, req *Request) error
	PutObjectAcl(ctx context.Context, req *Request) error
	PutObjectLegalHold(ctx context.Context, req *Request) error
	PutObjectLockConfiguration(ctx context.Context, req *Request) error
	PutObjectRetention(ctx context.Context, req *Request) error
	PutObjectTagging(ctx context.Context, req *Request) error
	PutPublicAccessBlock(ctx context.Context, req *Request) error
	RestoreObject(ctx context.Context, req *Request) error
	SelectObjectContent(ctx context.Context, req *Request) error
	UploadPart(ctx context.Context, req *Request) error
	UploadPartCopy(ctx context.Context, req *Request) error
}

// DefaultChecker implements Checker by allowing every operation. Embed
// it in a host's own type to get every method for free and override
// only the ones that need real policy.
type DefaultChecker struct{}

// Check runs DefaultCheck; embedders wanting anonymous access on some
// paths should override this method directly rather than relying on
// per-operation methods alone, since CheckOperation never reaches them
// if this fails first.
func (DefaultChecker) Check(ctx context.Context, acx *Context) error {
	return DefaultCheck(acx)
}

func (DefaultChecker) AbortMultipartUpload(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) CompleteMultipartUpload(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) CopyObject(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) CreateBucket(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) CreateMultipartUpload(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucket(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketAnalyticsConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketCors(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketEncryption(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketInventoryConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketLifecycle(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketMetricsConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketOwnershipControls(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketPolicy(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketReplication(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketTagging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteBucketWebsite(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteObject(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteObjectTagging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeleteObjects(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) DeletePublicAccessBlock(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketAccelerateConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketAcl(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketCors(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketEncryption(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketLifecycle(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketLocation(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketLogging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketNotificationConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketOwnershipControls(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketPolicy(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketPolicyStatus(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketReplication(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketRequestPayment(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketTagging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketVersioning(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetBucketWebsite(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetObject(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetObjectAcl(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetObjectAttributes(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetObjectLegalHold(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetObjectLockConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetObjectRetention(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetObjectTagging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) GetPublicAccessBlock(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) HeadBucket(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) HeadObject(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListBucketAnalyticsConfigurations(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListBucketIntelligentTieringConfigurations(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListBucketInventoryConfigurations(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListBucketMetricsConfigurations(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListBuckets(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListMultipartUploads(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListObjectVersions(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListObjects(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListObjectsV2(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) ListParts(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketAccelerateConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketAcl(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketCors(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketEncryption(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketLifecycleConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketLogging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketNotificationConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketOwnershipControls(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketPolicy(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketReplication(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketRequestPayment(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketTagging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketVersioning(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutBucketWebsite(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutObject(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutObjectAcl(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutObjectLegalHold(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutObjectLockConfiguration(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutObjectRetention(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutObjectTagging(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) PutPublicAccessBlock(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) RestoreObject(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) SelectObjectContent(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) UploadPart(ctx context.Context, req *Request) error { return nil }
func (DefaultChecker) UploadPartCopy(ctx context.Context, req *Request) error { return nil }

// CheckOperation runs c.Check, then dispatches to the per-operation
// method matching req.OperationName. It returns s3err.ErrNotImplemented
// for an operation name the Checker (and therefore the registry) does
// not know, which should only happen if the two are built from
// different registry versions.
func CheckOperation(ctx context.Context, c Checker, req *Request) error {
	if err := c.Check(ctx, req.Context); err != nil {
		return err
	}
	switch req.OperationName {
	case "AbortMultipartUpload":
		return c.AbortMultipartUpload(ctx, req)
	case "CompleteMultipartUpload":
		return c.CompleteMultipartUpload(ctx, req)
	case "CopyObject":
		return c.CopyObject(ctx, req)
	case "CreateBucket":
		return c.CreateBucket(ctx, req)
	case "CreateMultipartUpload":
		return c.CreateMultipartUpload(ctx, req)
	case "DeleteBucket":
		return c.DeleteBucket(ctx, req)
	case "DeleteBucketAnalyticsConfiguration":
		return c.DeleteBucketAnalyticsConfiguration(ctx, req)
	case "DeleteBucketCors":
		return c.DeleteBucketCors(ctx, req)
	case "DeleteBucketEncryption":
		return c.DeleteBucketEncryption(ctx, req)
	case "DeleteBucketInventoryConfiguration":
		return c.DeleteBucketInventoryConfiguration(ctx, req)
	case "DeleteBucketLifecycle":
		return c.DeleteBucketLifecycle(ctx, req)
	case "DeleteBucketMetricsConfiguration":
		return c.DeleteBucketMetricsConfiguration(ctx, req)
	case "DeleteBucketOwnershipControls":
		return c.DeleteBucketOwnershipControls(ctx, req)
	case "DeleteBucketPolicy":
		return c.DeleteBucketPolicy(ctx, req)
	case "DeleteBucketReplication":
		return c.DeleteBucketReplication(ctx, req)
	case "DeleteBucketTagging":
		return c.DeleteBucketTagging(ctx, req)
	case "DeleteBucketWebsite":
		return c.DeleteBucketWebsite(ctx, req)
	case "DeleteObject":
		return c.DeleteObject(ctx, req)
	case "DeleteObjectTagging":
		return c.DeleteObjectTagging(ctx, req)
	case "DeleteObjects":
		return c.DeleteObjects(ctx, req)
	case "DeletePublicAccessBlock":
		return c.DeletePublicAccessBlock(ctx, req)
	case "GetBucketAccelerateConfiguration":
		return c.GetBucketAccelerateConfiguration(ctx, req)
	case "GetBucketAcl":
		return c.GetBucketAcl(ctx, req)
	case "GetBucketCors":
		return c.GetBucketCors(ctx, req)
	case "GetBucketEncryption":
		return c.GetBucketEncryption(ctx, req)
	case "GetBucketLifecycle":
		return c.GetBucketLifecycle(ctx, req)
	case "GetBucketLocation":
		return c.GetBucketLocation(ctx, req)
	case "GetBucketLogging":
		return c.GetBucketLogging(ctx, req)
	case "GetBucketNotificationConfiguration":
		return c.GetBucketNotificationConfiguration(ctx, req)
	case "GetBucketOwnershipControls":
		return c.GetBucketOwnershipControls(ctx, req)
	case "GetBucketPolicy":
		return c.GetBucketPolicy(ctx, req)
	case "GetBucketPolicyStatus":
		return c.GetBucketPolicyStatus(ctx, req)
	case "GetBucketReplication":
		return c.GetBucketReplication(ctx, req)
	case "GetBucketRequestPayment":
		return c.GetBucketRequestPayment(ctx, req)
	case "GetBucketTagging":
		return c.GetBucketTagging(ctx, req)
	case "GetBucketVersioning":
		return c.GetBucketVersioning(ctx, req)
	case "GetBucketWebsite":
		return c.GetBucketWebsite(ctx, req)
	case "GetObject":
		return c.GetObject(ctx, req)
	case "GetObjectAcl":
		return c.GetObjectAcl(ctx, req)
	case "GetObjectAttributes":
		return c.GetObjectAttributes(ctx, req)
	case "GetObjectLegalHold":
		return c.GetObjectLegalHold(ctx, req)
	case "GetObjectLockConfiguration":
		return c.GetObjectLockConfiguration(ctx, req)
	case "GetObjectRetention":
		return c.GetObjectRetention(ctx, req)
	case "GetObjectTagging":
		return c.GetObjectTagging(ctx, req)
	case "GetPublicAccessBlock":
		return c.GetPublicAccessBlock(ctx, req)
	case "HeadBucket":
		return c.HeadBucket(ctx, req)
	case "HeadObject":
		return c.HeadObject(ctx, req)
	case "ListBucketAnalyticsConfigurations":
		return c.ListBucketAnalyticsConfigurations(ctx, req)
	case "ListBucketIntelligentTieringConfigurations":
		return c.ListBucketIntelligentTieringConfigurations(ctx, req)
	case "ListBucketInventoryConfigurations":
		return c.ListBucketInventoryConfigurations(ctx, req)
	case "ListBucketMetricsConfigurations":
		return c.ListBucketMetricsConfigurations(ctx, req)
	case "ListBuckets":
		return c.ListBuckets(ctx, req)
	case "ListMultipartUploads":
		return c.ListMultipartUploads(ctx, req)
	case "ListObjectVersions":
		return c.ListObjectVersions(ctx, req)
	case "ListObjects":
		return c.ListObjects(ctx, req)
	case "ListObjectsV2":
		return c.ListObjectsV2(ctx, req)
	case "ListParts":
		return c.ListParts(ctx, req)
	case "PutBucketAccelerateConfiguration":
		return c.PutBucketAccelerateConfiguration(ctx, req)
	case "PutBucketAcl":
		return c.PutBucketAcl(ctx, req)
	case "PutBucketCors":
		return c.PutBucketCors(ctx, req)
	case "PutBucketEncryption":
		return c.PutBucketEncryption(ctx, req)
	case "PutBucketLifecycleConfiguration":
		return c.PutBucketLifecycleConfiguration(ctx, req)
	case "PutBucketLogging":
		return c.PutBucketLogging(ctx, req)
	case "PutBucketNotificationConfiguration":
		return c.PutBucketNotificationConfiguration(ctx, req)
	case "PutBucketOwnershipControls":
		return c.PutBucketOwnershipControls(ctx, req)
	case "PutBucketPolicy":
		return c.PutBucketPolicy(ctx, req)
	case "PutBucketReplication":
		return c.PutBucketReplication(ctx, req)
	case "PutBucketRequestPayment":
		return c.PutBucketRequestPayment(ctx, req)
	case "PutBucketTagging":
		return c.PutBucketTagging(ctx, req)
	case "PutBucketVersioning":
		return c.PutBucketVersioning(ctx, req)
	case "PutBucketWebsite":
		return c.PutBucketWebsite(ctx, req)
	case "PutObject":
		return c.PutObject(ctx, req)
	case "PutObjectAcl":
		return c.PutObjectAcl(ctx, req)
	case "PutObjectLegalHold":
		return c.PutObjectLegalHold(ctx, req)
	case "PutObjectLockConfiguration":
		return c.PutObjectLockConfiguration(ctx, req)
	case "PutObjectRetention":
		return c.PutObjectRetention(ctx, req)
	case "PutObjectTagging":
		return c.PutObjectTagging(ctx, req)
	case "PutPublicAccessBlock":
		return c.PutPublicAccessBlock(ctx, req)
	case "RestoreObject":
		return c.RestoreObject(ctx, req)
	case "SelectObjectContent":
		return c.SelectObjectContent(ctx, req)
	case "UploadPart":
		return c.UploadPart(ctx, req)
	case "UploadPartCopy":
		return c.UploadPartCopy(ctx, req)
	default:
		return s3err.ErrNotImplemented
	}
}
