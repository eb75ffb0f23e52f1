package sigv4

// CalculatePolicySignature signs a base64-encoded POST policy document
// directly: unlike header/presigned auth, the policy document itself is
// the string-to-sign, with no canonical request or hashing step.
func CalculatePolicySignature(policyBase64, secretKey, date, region, svc string) string {
	signingKey := DeriveSigningKey(secretKey, date, region, svc)
	return calculateFromKey(signingKey, policyBase64)
}
