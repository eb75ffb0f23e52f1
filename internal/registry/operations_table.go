package registry

// baseOperations is the literal table New() loads. It covers the full
// S3 REST surface: the ~25 operations fully typed in shapes_table.go
// (the "flagship" set, matching what the storage/metadata backends implement
// plus the operations spec.md's end-to-end scenarios name) get real
// Struct shapes; the remainder are registered for router coverage and
// dispatch to NotImplemented unless a host overrides them, with codec
// falling back to bucket/key-only (de)serialization when no Struct
// shape is registered under "{Name}Input"/"{Name}Output" (see
// codec.Decode's shape-miss fallback).
func baseOperations() []*Operation {
	return []*Operation{
		// Root
		op("ListBuckets", "GET", "/", 200, "Returns a list of all buckets owned by the authenticated sender."),

		// Bucket: GET disambiguators
		op("ListObjects", "GET", "/{Bucket}", 200, "Returns some or all of the objects in a bucket."),
		op("ListObjectsV2", "GET", "/{Bucket}?list-type=2", 200, "Returns some or all of the objects in a bucket (v2)."),
		op("ListObjectVersions", "GET", "/{Bucket}?versions", 200, "Returns metadata about all versions of objects in a bucket."),
		op("ListMultipartUploads", "GET", "/{Bucket}?uploads", 200, "Lists in-progress multipart uploads in a bucket."),
		op("GetBucketAcl", "GET", "/{Bucket}?acl", 200, "Returns the access control list of a bucket."),
		op("GetBucketCors", "GET", "/{Bucket}?cors", 200, "Returns the CORS configuration of a bucket."),
		op("GetBucketLifecycle", "GET", "/{Bucket}?lifecycle", 200, "Returns the lifecycle configuration of a bucket."),
		op("GetBucketPolicy", "GET", "/{Bucket}?policy", 200, "Returns the policy of a bucket."),
		op("GetBucketLocation", "GET", "/{Bucket}?location", 200, "Returns the region the bucket resides in."),
		op("GetBucketLogging", "GET", "/{Bucket}?logging", 200, "Returns the logging status of a bucket."),
		op("GetBucketNotificationConfiguration", "GET", "/{Bucket}?notification", 200, "Returns the notification configuration of a bucket."),
		op("GetBucketReplication", "GET", "/{Bucket}?replication", 200, "Returns the replication configuration of a bucket."),
		op("GetBucketTagging", "GET", "/{Bucket}?tagging", 200, "Returns the tag set of a bucket."),
		op("GetBucketVersioning", "GET", "/{Bucket}?versioning", 200, "Returns the versioning state of a bucket."),
		op("GetBucketWebsite", "GET", "/{Bucket}?website", 200, "Returns the website configuration of a bucket."),
		op("GetBucketAccelerateConfiguration", "GET", "/{Bucket}?accelerate", 200, "Returns the accelerate configuration of a bucket."),
		op("GetBucketRequestPayment", "GET", "/{Bucket}?requestPayment", 200, "Returns the request payment configuration of a bucket."),
		op("GetBucketEncryption", "GET", "/{Bucket}?encryption", 200, "Returns the default encryption configuration of a bucket."),
		op("GetObjectLockConfiguration", "GET", "/{Bucket}?object-lock", 200, "Returns the object lock configuration of a bucket."),
		op("GetBucketPolicyStatus", "GET", "/{Bucket}?policyStatus", 200, "Returns the policy status of a bucket."),
		op("GetPublicAccessBlock", "GET", "/{Bucket}?publicAccessBlock", 200, "Returns the public access block configuration of a bucket."),
		op("GetBucketOwnershipControls", "GET", "/{Bucket}?ownershipControls", 200, "Returns the ownership controls of a bucket."),
		op("ListBucketAnalyticsConfigurations", "GET", "/{Bucket}?analytics", 200, "Lists analytics configurations for a bucket."),
		op("ListBucketIntelligentTieringConfigurations", "GET", "/{Bucket}?intelligent-tiering", 200, "Lists intelligent tiering configurations for a bucket."),
		op("ListBucketInventoryConfigurations", "GET", "/{Bucket}?inventory", 200, "Lists inventory configurations for a bucket."),
		op("ListBucketMetricsConfigurations", "GET", "/{Bucket}?metrics", 200, "Lists metrics configurations for a bucket."),

		// Bucket: HEAD
		op("HeadBucket", "HEAD", "/{Bucket}", 200, "Checks whether a bucket exists and the caller has access."),

		// Bucket: PUT disambiguators
		op("CreateBucket", "PUT", "/{Bucket}", 200, "Creates a new bucket."),
		op("PutBucketAcl", "PUT", "/{Bucket}?acl", 200, "Sets the access control list of a bucket."),
		op("PutBucketCors", "PUT", "/{Bucket}?cors", 200, "Sets the CORS configuration of a bucket."),
		op("PutBucketLifecycleConfiguration", "PUT", "/{Bucket}?lifecycle", 200, "Sets the lifecycle configuration of a bucket."),
		// 204, not the 200 its Smithy trait declares: see
		// https://github.com/awslabs/smithy-rs/discussions/2308.
		op("PutBucketPolicy", "PUT", "/{Bucket}?policy", 204, "Sets the policy of a bucket."),
		op("PutBucketLogging", "PUT", "/{Bucket}?logging", 200, "Sets the logging configuration of a bucket."),
		op("PutBucketNotificationConfiguration", "PUT", "/{Bucket}?notification", 200, "Sets the notification configuration of a bucket."),
		op("PutBucketReplication", "PUT", "/{Bucket}?replication", 200, "Sets the replication configuration of a bucket."),
		op("PutBucketTagging", "PUT", "/{Bucket}?tagging", 200, "Sets the tag set of a bucket."),
		op("PutBucketVersioning", "PUT", "/{Bucket}?versioning", 200, "Sets the versioning state of a bucket."),
		op("PutBucketWebsite", "PUT", "/{Bucket}?website", 200, "Sets the website configuration of a bucket."),
		op("PutBucketAccelerateConfiguration", "PUT", "/{Bucket}?accelerate", 200, "Sets the accelerate configuration of a bucket."),
		op("PutBucketRequestPayment", "PUT", "/{Bucket}?requestPayment", 200, "Sets the request payment configuration of a bucket."),
		op("PutBucketEncryption", "PUT", "/{Bucket}?encryption", 200, "Sets the default encryption configuration of a bucket."),
		op("PutObjectLockConfiguration", "PUT", "/{Bucket}?object-lock", 200, "Sets the object lock configuration of a bucket."),
		op("PutPublicAccessBlock", "PUT", "/{Bucket}?publicAccessBlock", 200, "Sets the public access block configuration of a bucket."),
		op("PutBucketOwnershipControls", "PUT", "/{Bucket}?ownershipControls", 200, "Sets the ownership controls of a bucket."),

		// Bucket: DELETE disambiguators
		op("DeleteBucket", "DELETE", "/{Bucket}", 204, "Deletes an empty bucket."),
		op("DeleteBucketCors", "DELETE", "/{Bucket}?cors", 204, "Deletes the CORS configuration of a bucket."),
		op("DeleteBucketLifecycle", "DELETE", "/{Bucket}?lifecycle", 204, "Deletes the lifecycle configuration of a bucket."),
		op("DeleteBucketPolicy", "DELETE", "/{Bucket}?policy", 204, "Deletes the policy of a bucket."),
		op("DeleteBucketTagging", "DELETE", "/{Bucket}?tagging", 204, "Deletes the tag set of a bucket."),
		op("DeleteBucketWebsite", "DELETE", "/{Bucket}?website", 204, "Deletes the website configuration of a bucket."),
		op("DeleteBucketEncryption", "DELETE", "/{Bucket}?encryption", 204, "Deletes the default encryption configuration of a bucket."),
		op("DeleteBucketReplication", "DELETE", "/{Bucket}?replication", 204, "Deletes the replication configuration of a bucket."),
		op("DeletePublicAccessBlock", "DELETE", "/{Bucket}?publicAccessBlock", 204, "Deletes the public access block configuration of a bucket."),
		op("DeleteBucketOwnershipControls", "DELETE", "/{Bucket}?ownershipControls", 204, "Deletes the ownership controls of a bucket."),
		opRQ("DeleteBucketAnalyticsConfiguration", "DELETE", "/{Bucket}?analytics", 204, "Deletes an analytics configuration from a bucket.", "id"),
		opRQ("DeleteBucketMetricsConfiguration", "DELETE", "/{Bucket}?metrics", 204, "Deletes a metrics configuration from a bucket.", "id"),
		opRQ("DeleteBucketInventoryConfiguration", "DELETE", "/{Bucket}?inventory", 204, "Deletes an inventory configuration from a bucket.", "id"),

		// Bucket: POST
		op("DeleteObjects", "POST", "/{Bucket}?delete", 200, "Deletes multiple objects in a single request."),

		// Object: GET disambiguators
		op("GetObject", "GET", "/{Bucket}/{Key+}", 200, "Retrieves an object (escalates to 206 when content-range is set)."),
		op("GetObjectAcl", "GET", "/{Bucket}/{Key+}?acl", 200, "Returns the access control list of an object."),
		op("GetObjectTagging", "GET", "/{Bucket}/{Key+}?tagging", 200, "Returns the tag set of an object."),
		op("GetObjectRetention", "GET", "/{Bucket}/{Key+}?retention", 200, "Returns the retention settings of an object."),
		op("GetObjectLegalHold", "GET", "/{Bucket}/{Key+}?legal-hold", 200, "Returns the legal hold status of an object."),
		op("GetObjectAttributes", "GET", "/{Bucket}/{Key+}?attributes", 200, "Retrieves select metadata attributes of an object."),
		opRQ("ListParts", "GET", "/{Bucket}/{Key+}?uploadId", 200, "Lists the parts uploaded for a specific multipart upload.", "uploadId"),

		// Object: HEAD
		op("HeadObject", "HEAD", "/{Bucket}/{Key+}", 200, "Retrieves object metadata without the body."),

		// Object: PUT disambiguators
		op("PutObject", "PUT", "/{Bucket}/{Key+}", 200, "Adds an object to a bucket."),
		op("PutObjectAcl", "PUT", "/{Bucket}/{Key+}?acl", 200, "Sets the access control list of an object."),
		op("PutObjectTagging", "PUT", "/{Bucket}/{Key+}?tagging", 200, "Sets the tag set of an object."),
		op("PutObjectRetention", "PUT", "/{Bucket}/{Key+}?retention", 200, "Sets the retention settings of an object."),
		op("PutObjectLegalHold", "PUT", "/{Bucket}/{Key+}?legal-hold", 200, "Sets the legal hold status of an object."),
		opRQ2("UploadPart", "PUT", "/{Bucket}/{Key+}?partNumber&uploadId", 200, "Uploads a part in a multipart upload.", "partNumber", "uploadId"),
		opRQH("UploadPartCopy", "PUT", "/{Bucket}/{Key+}?partNumber&uploadId", 200, "Uploads a part by copying from an existing object.", []string{"partNumber", "uploadId"}, "x-amz-copy-source"),
		opRH("CopyObject", "PUT", "/{Bucket}/{Key+}", 200, "Creates a copy of an object (disambiguated by the x-amz-copy-source header).", "x-amz-copy-source"),

		// Object: DELETE disambiguators
		op("DeleteObject", "DELETE", "/{Bucket}/{Key+}", 204, "Removes an object."),
		op("DeleteObjectTagging", "DELETE", "/{Bucket}/{Key+}?tagging", 204, "Deletes the tag set of an object."),
		opRQ("AbortMultipartUpload", "DELETE", "/{Bucket}/{Key+}?uploadId", 204, "Aborts a multipart upload.", "uploadId"),

		// Object: POST disambiguators
		op("CreateMultipartUpload", "POST", "/{Bucket}/{Key+}?uploads", 200, "Initiates a multipart upload."),
		opRQ("CompleteMultipartUpload", "POST", "/{Bucket}/{Key+}?uploadId", 200, "Completes a multipart upload (streams keep-alive whitespace while committing)."),
		op("RestoreObject", "POST", "/{Bucket}/{Key+}?restore", 200, "Restores a temporary or permanent copy of an archived object."),
		op("SelectObjectContent", "POST", "/{Bucket}/{Key+}?select&select-type=2", 200, "Runs a SQL expression over an object's contents (event-stream framing delegated to the host)."),
	}
}

func op(name, method, uri string, status int, doc string) *Operation {
	return &Operation{
		Name:          name,
		InputType:     name + "Input",
		OutputType:    name + "Output",
		SmithyInput:   name + "Request",
		SmithyOutput:  name + "Result",
		Method:        method,
		URIPattern:    uri,
		SuccessStatus: status,
		Doc:           doc,
	}
}

// opRQ registers an operation whose final disambiguator is a single
// required (but valueless, i.e. non-pattern) query string beyond what
// decomposeURI already classified as the tag; RequiredQuery records it
// explicitly for routes where spec.md treats the tag itself as the
// "required query" disambiguator (e.g. ListParts, CompleteMultipartUpload).
func opRQ(name, method, uri string, status int, doc string, requiredQueries ...string) *Operation {
	o := op(name, method, uri, status, doc)
	o.RequiredQueries = requiredQueries
	return o
}

func opRQ2(name, method, uri string, status int, doc string, q1, q2 string) *Operation {
	o := op(name, method, uri, status, doc)
	o.RequiredQueries = []string{q1, q2}
	return o
}

func opRQH(name, method, uri string, status int, doc string, requiredQueries []string, requiredHeader string) *Operation {
	o := op(name, method, uri, status, doc)
	o.RequiredQueries = requiredQueries
	o.RequiredHeaders = []string{requiredHeader}
	return o
}

func opRH(name, method, uri string, status int, doc string, requiredHeader string) *Operation {
	o := op(name, method, uri, status, doc)
	o.RequiredHeaders = []string{requiredHeader}
	return o
}
