// Package sigv4 implements AWS Signature Version 4: canonical request
// construction, string-to-sign, signing-key derivation, and the three
// request shapes that carry a SigV4 signature (header auth, presigned
// URLs, and the per-chunk signature chain used by aws-chunked uploads).
//
// The package has no dependency on any particular credential store: a
// CredentialSource is supplied by the caller.
package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

const (
	// Algorithm is the signing algorithm identifier used in both the
	// Authorization header and the X-Amz-Algorithm query parameter.
	Algorithm = "AWS4-HMAC-SHA256"

	// ChunkAlgorithm is the string-to-sign algorithm line for a chunk
	// signature within an aws-chunked streaming upload.
	ChunkAlgorithm = "AWS4-HMAC-SHA256-PAYLOAD"

	// scopeTerminator is the fixed suffix of every credential scope.
	scopeTerminator = "aws4_request"

	// UnsignedPayload marks a request whose body hash is not verified.
	UnsignedPayload = "UNSIGNED-PAYLOAD"

	// StreamingPayload marks an aws-chunked request signed chunk by chunk.
	StreamingPayload = "STREAMING-AWS4-HMAC-SHA256-PAYLOAD"

	// EmptyStringSHA256 is the SHA-256 hash of the empty string, used
	// both as a payload hash and as the chunk-data hash of a zero-length
	// chunk (including the final chunk of a streaming upload).
	EmptyStringSHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

// Header is a single name/value pair preserved in request order.
// Header names are already lowercased by the caller.
type Header struct {
	Name  string
	Value string
}

// QueryParam is a single decoded query-string name/value pair.
type QueryParam struct {
	Name  string
	Value string
}

// Payload selects which hashed-payload line goes into the canonical
// request.
type Payload struct {
	kind        payloadKind
	singleChunk []byte
	precomputed string
}

type payloadKind int

const (
	payloadUnsigned payloadKind = iota
	payloadEmpty
	payloadSingleChunk
	payloadMultipleChunks
	payloadPrecomputed
)

func UnsignedPayloadOf() Payload          { return Payload{kind: payloadUnsigned} }
func EmptyPayload() Payload               { return Payload{kind: payloadEmpty} }
func SingleChunkPayload(b []byte) Payload { return Payload{kind: payloadSingleChunk, singleChunk: b} }
func MultipleChunksPayload() Payload      { return Payload{kind: payloadMultipleChunks} }

// PrecomputedPayload wraps a hex digest the caller already computed
// (e.g. the client-supplied x-amz-content-sha256), emitted verbatim.
func PrecomputedPayload(hash string) Payload { return Payload{kind: payloadPrecomputed, precomputed: hash} }

func (p Payload) hashLine() string {
	switch p.kind {
	case payloadEmpty:
		return EmptyStringSHA256
	case payloadSingleChunk:
		return hexSHA256(p.singleChunk)
	case payloadMultipleChunks:
		return StreamingPayload
	case payloadPrecomputed:
		return p.precomputed
	default:
		return UnsignedPayload
	}
}

// isSkippedHeader reports whether a header is excluded from the signed
// set. Only the Authorization header itself is skipped; every other
// header the client lists in SignedHeaders is included verbatim.
func isSkippedHeader(name string) bool { return name == "authorization" }

// isSkippedQuery reports whether a query parameter is excluded when
// building the canonical request for a presigned URL: the signature
// itself cannot sign over itself.
func isSkippedQuery(name string) bool { return name == "X-Amz-Signature" }

// CreateCanonicalRequest builds the canonical request string for
// header-based (or chunked) auth: the query strings are as decoded off
// the wire, and signedHeaders must already be the exact ordered subset
// the client declared in its SignedHeaders list.
func CreateCanonicalRequest(method, uriPath string, query []QueryParam, signedHeaders []Header, payload Payload) string {
	var sb strings.Builder
	sb.Grow(256)

	sb.WriteString(method)
	sb.WriteByte('\n')

	URIEncode(&sb, uriPath, false)
	sb.WriteByte('\n')

	writeCanonicalQuery(&sb, query, false)
	sb.WriteByte('\n')

	writeCanonicalHeaders(&sb, signedHeaders)
	sb.WriteByte('\n')

	writeSignedHeaderNames(&sb, signedHeaders)
	sb.WriteByte('\n')

	sb.WriteString(payload.hashLine())

	return sb.String()
}

// CreatePresignedCanonicalRequest builds the canonical request for a
// presigned URL. The payload is always UNSIGNED-PAYLOAD, and
// X-Amz-Signature is excluded from the query string before sorting.
func CreatePresignedCanonicalRequest(method, uriPath string, query []QueryParam, signedHeaders []Header) string {
	var sb strings.Builder
	sb.Grow(256)

	sb.WriteString(method)
	sb.WriteByte('\n')

	URIEncode(&sb, uriPath, false)
	sb.WriteByte('\n')

	writeCanonicalQuery(&sb, query, true)
	sb.WriteByte('\n')

	writeCanonicalHeaders(&sb, signedHeaders)
	sb.WriteByte('\n')

	writeSignedHeaderNames(&sb, signedHeaders)
	sb.WriteByte('\n')

	sb.WriteString(UnsignedPayload)

	return sb.String()
}

func writeCanonicalQuery(sb *strings.Builder, query []QueryParam, skipSignature bool) {
	type pair struct{ name, value string }
	pairs := make([]pair, 0, len(query))
	for _, q := range query {
		if skipSignature && isSkippedQuery(q.Name) {
			continue
		}
		pairs = append(pairs, pair{uriEncodeString(q.Name, true), uriEncodeString(q.Value, true)})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].name != pairs[j].name {
			return pairs[i].name < pairs[j].name
		}
		return pairs[i].value < pairs[j].value
	})
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.name)
		sb.WriteByte('=')
		sb.WriteString(p.value)
	}
}

func writeCanonicalHeaders(sb *strings.Builder, headers []Header) {
	for _, h := range headers {
		if isSkippedHeader(h.Name) {
			continue
		}
		sb.WriteString(h.Name)
		sb.WriteByte(':')
		sb.WriteString(strings.TrimSpace(h.Value))
		sb.WriteByte('\n')
	}
}

func writeSignedHeaderNames(sb *strings.Builder, headers []Header) {
	first := true
	for _, h := range headers {
		if isSkippedHeader(h.Name) {
			continue
		}
		if !first {
			sb.WriteByte(';')
		}
		first = false
		sb.WriteString(h.Name)
	}
}

// CreateStringToSign builds the string-to-sign for a header, presigned,
// or full-request signature.
func CreateStringToSign(canonicalRequest, amzDate, date, region, service string) string {
	return Algorithm + "\n" +
		amzDate + "\n" +
		date + "/" + region + "/" + service + "/" + scopeTerminator + "\n" +
		hexSHA256([]byte(canonicalRequest))
}

// CreateChunkStringToSign builds the string-to-sign for one chunk of an
// aws-chunked streaming upload, chaining from the previous chunk's (or
// the seed request's) signature.
func CreateChunkStringToSign(amzDate, date, region, service, prevSignature string, chunkData []byte) string {
	var sb strings.Builder
	sb.WriteString(ChunkAlgorithm)
	sb.WriteByte('\n')
	sb.WriteString(amzDate)
	sb.WriteByte('\n')
	sb.WriteString(date)
	sb.WriteByte('/')
	sb.WriteString(region)
	sb.WriteByte('/')
	sb.WriteString(service)
	sb.WriteString("/aws4_request\n")
	sb.WriteString(prevSignature)
	sb.WriteByte('\n')
	sb.WriteString(EmptyStringSHA256)
	sb.WriteByte('\n')
	if len(chunkData) == 0 {
		sb.WriteString(EmptyStringSHA256)
	} else {
		sb.WriteString(hexSHA256(chunkData))
	}
	return sb.String()
}

// DeriveSigningKey runs the four-step HMAC chain: date, region, service,
// then the fixed "aws4_request" terminator.
func DeriveSigningKey(secretKey, date, region, service string) []byte {
	dateKey := hmacSHA256([]byte("AWS4"+secretKey), date)
	regionKey := hmacSHA256(dateKey, region)
	serviceKey := hmacSHA256(regionKey, service)
	return hmacSHA256(serviceKey, scopeTerminator)
}

// CalculateSignature signs stringToSign with the derived signing key
// and returns the lowercase hex signature.
func CalculateSignature(stringToSign, secretKey, date, region, service string) string {
	signingKey := DeriveSigningKey(secretKey, date, region, service)
	return hex.EncodeToString(hmacSHA256(signingKey, stringToSign))
}

func hmacSHA256(key []byte, data string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(data))
	return h.Sum(nil)
}

func hexSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// URIEncode writes the S3 URI-encoding of input to sb: unreserved
// characters (A-Z a-z 0-9 - _ . ~) pass through, '/' passes through
// unless encodeSlash is set, everything else is percent-encoded with
// uppercase hex digits.
func URIEncode(sb *strings.Builder, input string, encodeSlash bool) {
	sb.Grow(sb.Len() + len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case isUnreserved(c):
			sb.WriteByte(c)
		case c == '/' && !encodeSlash:
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(hexDigit(c >> 4))
			sb.WriteByte(hexDigit(c & 0x0f))
		}
	}
}

func uriEncodeString(s string, encodeSlash bool) string {
	var sb strings.Builder
	URIEncode(&sb, s, encodeSlash)
	return sb.String()
}

func isUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.' || c == '~'
}

func hexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'A' + b - 10
}
