package sigv4

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	signingKeyTTL   = 24 * time.Hour
	credCacheTTL    = 60 * time.Second
	maxCacheEntries = 1000

	maxPresignedExpiry = 604800

	// clockSkewTolerance is the maximum allowed difference between the
	// request timestamp and wall-clock time for header-based auth.
	clockSkewTolerance = 15 * time.Minute

	service = "s3"
)

type signingKeyCacheEntry struct {
	key       []byte
	expiresAt time.Time
}

type credCacheEntry struct {
	cred      *Credential
	expiresAt time.Time
}

// Verifier checks SigV4 signatures against a CredentialSource, caching
// derived signing keys and credential lookups for the lifetime of the
// process.
type Verifier struct {
	Source CredentialSource
	Region string

	signingKeyMu sync.RWMutex
	signingKeys  map[string]signingKeyCacheEntry

	credCacheMu sync.RWMutex
	credCache   map[string]credCacheEntry
}

// NewVerifier builds a Verifier bound to the given credential source and
// signing region.
func NewVerifier(source CredentialSource, region string) *Verifier {
	return &Verifier{
		Source:      source,
		Region:      region,
		signingKeys: make(map[string]signingKeyCacheEntry),
		credCache:   make(map[string]credCacheEntry),
	}
}

func (v *Verifier) cachedSigningKey(secretKey, date, region, svc string) []byte {
	cacheKey := secretKey + "\x00" + date + "\x00" + region + "\x00" + svc
	now := time.Now()

	v.signingKeyMu.RLock()
	if entry, ok := v.signingKeys[cacheKey]; ok && now.Before(entry.expiresAt) {
		v.signingKeyMu.RUnlock()
		return entry.key
	}
	v.signingKeyMu.RUnlock()

	key := DeriveSigningKey(secretKey, date, region, svc)

	v.signingKeyMu.Lock()
	if len(v.signingKeys) >= maxCacheEntries {
		v.signingKeys = make(map[string]signingKeyCacheEntry)
	}
	v.signingKeys[cacheKey] = signingKeyCacheEntry{key: key, expiresAt: now.Add(signingKeyTTL)}
	v.signingKeyMu.Unlock()

	return key
}

func (v *Verifier) cachedCredential(ctx context.Context, accessKeyID string) (*Credential, error) {
	now := time.Now()

	v.credCacheMu.RLock()
	if entry, ok := v.credCache[accessKeyID]; ok && now.Before(entry.expiresAt) {
		v.credCacheMu.RUnlock()
		return entry.cred, nil
	}
	v.credCacheMu.RUnlock()

	cred, err := v.Source.Lookup(ctx, accessKeyID)
	if err != nil {
		return nil, err
	}

	v.credCacheMu.Lock()
	if len(v.credCache) >= maxCacheEntries {
		v.credCache = make(map[string]credCacheEntry)
	}
	v.credCache[accessKeyID] = credCacheEntry{cred: cred, expiresAt: now.Add(credCacheTTL)}
	v.credCacheMu.Unlock()

	return cred, nil
}

// parsedAuth holds the parsed components of an Authorization header:
// "AWS4-HMAC-SHA256 Credential=AKID/date/region/service/aws4_request,
// SignedHeaders=host;..., Signature=hex".
type parsedAuth struct {
	AccessKeyID   string
	Date          string
	Region        string
	Service       string
	SignedHeaders []string
	Signature     string
}

func parseAuthorizationHeader(header string) (*parsedAuth, error) {
	if !strings.HasPrefix(header, Algorithm+" ") {
		return nil, fmt.Errorf("unsupported algorithm")
	}
	rest := strings.TrimPrefix(header, Algorithm+" ")

	parts := make(map[string]string)
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		idx := strings.IndexByte(part, '=')
		if idx < 0 {
			continue
		}
		parts[strings.TrimSpace(part[:idx])] = strings.TrimSpace(part[idx+1:])
	}

	credential, ok := parts["Credential"]
	if !ok || credential == "" {
		return nil, fmt.Errorf("missing Credential")
	}
	signedHeadersStr, ok := parts["SignedHeaders"]
	if !ok || signedHeadersStr == "" {
		return nil, fmt.Errorf("missing SignedHeaders")
	}
	signature, ok := parts["Signature"]
	if !ok || signature == "" {
		return nil, fmt.Errorf("missing Signature")
	}

	credParts := strings.SplitN(credential, "/", 5)
	if len(credParts) != 5 {
		return nil, fmt.Errorf("invalid credential format")
	}
	if credParts[4] != scopeTerminator {
		return nil, fmt.Errorf("invalid credential scope terminator: %s", credParts[4])
	}

	return &parsedAuth{
		AccessKeyID:   credParts[0],
		Date:          credParts[1],
		Region:        credParts[2],
		Service:       credParts[3],
		SignedHeaders: strings.Split(signedHeadersStr, ";"),
		Signature:     signature,
	}, nil
}

func headersFromRequest(r *http.Request, names []string) []Header {
	out := make([]Header, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(name)
		var value string
		if name == "host" {
			value = r.Host
			if value == "" {
				value = r.Header.Get("Host")
			}
		} else {
			values := r.Header.Values(http.CanonicalHeaderKey(name))
			value = strings.Join(values, ",")
		}
		// AWS collapses internal whitespace runs in header values before
		// they enter the canonical request.
		for strings.Contains(value, "  ") {
			value = strings.ReplaceAll(value, "  ", " ")
		}
		out = append(out, Header{Name: name, Value: value})
	}
	return out
}

func queryFromValues(values url.Values) []QueryParam {
	out := make([]QueryParam, 0, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			out = append(out, QueryParam{Name: k, Value: ""})
			continue
		}
		for _, v := range vs {
			out = append(out, QueryParam{Name: k, Value: v})
		}
	}
	return out
}

// VerifyHeader validates the Authorization header on r against
// payloadHash, the precomputed (or UNSIGNED-PAYLOAD / STREAMING-...)
// x-amz-content-sha256 value the caller has already resolved. It
// returns the verified signature alongside the credential so a
// streaming (aws-chunked) body can seed its chunk-signature chain from
// it without recomputing the header signature a second time.
func (v *Verifier) VerifyHeader(r *http.Request, payloadHash string) (*Credential, string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "", &AuthError{Code: "AccessDenied", Message: "Missing Authorization header"}
	}

	parsed, err := parseAuthorizationHeader(authHeader)
	if err != nil {
		return nil, "", &AuthError{Code: "AccessDenied", Message: fmt.Sprintf("Invalid Authorization header: %v", err)}
	}

	cred, err := v.cachedCredential(r.Context(), parsed.AccessKeyID)
	if err != nil {
		return nil, "", &AuthError{Code: "InternalError", Message: "Failed to look up credentials"}
	}
	if cred == nil || !cred.Active {
		return nil, "", &AuthError{Code: "InvalidAccessKeyId", Message: "The AWS Access Key Id you provided does not exist in our records"}
	}

	amzDate := r.Header.Get("X-Amz-Date")
	if amzDate == "" {
		amzDate = r.Header.Get("Date")
	}
	if amzDate == "" {
		return nil, "", &AuthError{Code: "AccessDenied", Message: "Missing X-Amz-Date or Date header"}
	}

	requestTime, parseErr := time.Parse(ISO8601Format, amzDate)
	if parseErr != nil {
		requestTime, parseErr = time.Parse(time.RFC1123, amzDate)
		if parseErr != nil {
			return nil, "", &AuthError{Code: "AccessDenied", Message: "Invalid date format"}
		}
	}

	if diff := time.Now().UTC().Sub(requestTime); diff > clockSkewTolerance || diff < -clockSkewTolerance {
		return nil, "", &AuthError{Code: "RequestTimeTooSkewed", Message: "The difference between the request time and the server's time is too large"}
	}

	if len(amzDate) < 8 || parsed.Date != amzDate[:8] {
		return nil, "", &AuthError{Code: "SignatureDoesNotMatch", Message: "Credential date does not match X-Amz-Date"}
	}

	canonicalRequest := CreateCanonicalRequest(r.Method, r.URL.Path, queryFromValues(r.URL.Query()),
		headersFromRequest(r, parsed.SignedHeaders), payloadOf(payloadHash))

	stringToSign := CreateStringToSign(canonicalRequest, amzDate, parsed.Date, parsed.Region, parsed.Service)
	signingKey := v.cachedSigningKey(cred.SecretKey, parsed.Date, parsed.Region, parsed.Service)
	expected := calculateFromKey(signingKey, stringToSign)

	if subtle.ConstantTimeCompare([]byte(expected), []byte(parsed.Signature)) != 1 {
		return nil, "", &AuthError{Code: "SignatureDoesNotMatch", Message: "The request signature we calculated does not match the signature you provided"}
	}

	return cred, expected, nil
}

// VerifyPresigned validates a presigned URL via its X-Amz-* query
// parameters.
func (v *Verifier) VerifyPresigned(r *http.Request) (*Credential, error) {
	q := r.URL.Query()

	if algo := q.Get("X-Amz-Algorithm"); algo != Algorithm {
		return nil, &AuthError{Code: "AccessDenied", Message: "Unsupported algorithm"}
	}

	credStr := q.Get("X-Amz-Credential")
	if credStr == "" {
		return nil, &AuthError{Code: "AccessDenied", Message: "Missing X-Amz-Credential"}
	}
	credParts := strings.SplitN(credStr, "/", 5)
	if len(credParts) != 5 || credParts[4] != scopeTerminator {
		return nil, &AuthError{Code: "AccessDenied", Message: "Invalid credential format"}
	}
	accessKeyID, date, region, svc := credParts[0], credParts[1], credParts[2], credParts[3]

	amzDate := q.Get("X-Amz-Date")
	if amzDate == "" {
		return nil, &AuthError{Code: "AccessDenied", Message: "Missing X-Amz-Date"}
	}
	expiresStr := q.Get("X-Amz-Expires")
	if expiresStr == "" {
		return nil, &AuthError{Code: "AccessDenied", Message: "Missing X-Amz-Expires"}
	}
	signedHeadersStr := q.Get("X-Amz-SignedHeaders")
	if signedHeadersStr == "" {
		return nil, &AuthError{Code: "AccessDenied", Message: "Missing X-Amz-SignedHeaders"}
	}
	signature := q.Get("X-Amz-Signature")
	if signature == "" {
		return nil, &AuthError{Code: "AccessDenied", Message: "Missing X-Amz-Signature"}
	}

	var expires int
	if _, err := fmt.Sscanf(expiresStr, "%d", &expires); err != nil || expires < 1 || expires > maxPresignedExpiry {
		return nil, &AuthError{Code: "AccessDenied", Message: fmt.Sprintf("Invalid X-Amz-Expires value: %s", expiresStr)}
	}

	requestTime, err := time.Parse(ISO8601Format, amzDate)
	if err != nil {
		return nil, &AuthError{Code: "AccessDenied", Message: "Invalid X-Amz-Date format"}
	}
	if time.Now().UTC().After(requestTime.Add(time.Duration(expires) * time.Second)) {
		return nil, &AuthError{Code: "AccessDenied", Message: "Request has expired"}
	}
	if len(amzDate) < 8 || date != amzDate[:8] {
		return nil, &AuthError{Code: "SignatureDoesNotMatch", Message: "Credential date does not match X-Amz-Date"}
	}

	cred, err := v.cachedCredential(r.Context(), accessKeyID)
	if err != nil {
		return nil, &AuthError{Code: "InternalError", Message: "Failed to look up credentials"}
	}
	if cred == nil || !cred.Active {
		return nil, &AuthError{Code: "InvalidAccessKeyId", Message: "The AWS Access Key Id you provided does not exist in our records"}
	}

	signedHeaders := strings.Split(signedHeadersStr, ";")
	qcopy := url.Values{}
	for k, v := range q {
		qcopy[k] = v
	}
	canonicalRequest := CreatePresignedCanonicalRequest(r.Method, r.URL.Path, queryFromValues(qcopy), headersFromRequest(r, signedHeaders))

	stringToSign := CreateStringToSign(canonicalRequest, amzDate, date, region, svc)
	signingKey := v.cachedSigningKey(cred.SecretKey, date, region, svc)
	expected := calculateFromKey(signingKey, stringToSign)

	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		return nil, &AuthError{Code: "SignatureDoesNotMatch", Message: "The request signature we calculated does not match the signature you provided"}
	}

	return cred, nil
}

func payloadOf(hash string) Payload {
	switch hash {
	case "", UnsignedPayload:
		return UnsignedPayloadOf()
	case StreamingPayload:
		return MultipleChunksPayload()
	case EmptyStringSHA256:
		return EmptyPayload()
	default:
		return PrecomputedPayload(hash)
	}
}

func calculateFromKey(signingKey []byte, stringToSign string) string {
	h := hmac.New(sha256.New, signingKey)
	h.Write([]byte(stringToSign))
	return hex.EncodeToString(h.Sum(nil))
}

// DetectAuthMethod classifies a request as "header", "presigned",
// "ambiguous" (both present), or "none".
func DetectAuthMethod(r *http.Request) string {
	hasHeader := strings.HasPrefix(r.Header.Get("Authorization"), Algorithm)
	hasQuery := r.URL.Query().Get("X-Amz-Algorithm") != ""
	switch {
	case hasHeader && hasQuery:
		return "ambiguous"
	case hasHeader:
		return "header"
	case hasQuery:
		return "presigned"
	default:
		return "none"
	}
}
