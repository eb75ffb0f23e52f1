package sigv2

import "testing"

const testSecretKey = "wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY"

func TestStringToSignObjectGet(t *testing.T) {
	headers := []Header{{"date", "Tue, 27 Mar 2007 19:36:42 +0000"}}
	sts := CreateStringToSign(ModeHeaderAuth, "GET", "/photos/puppy.jpg", nil, headers, "awsexamplebucket1")
	want := "GET\n\n\nTue, 27 Mar 2007 19:36:42 +0000\n/awsexamplebucket1/photos/puppy.jpg"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "qgk2+6Sv9/oM7G3qLEjTH1a1l1g=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignObjectPut(t *testing.T) {
	headers := []Header{
		{"content-type", "image/jpeg"},
		{"date", "Tue, 27 Mar 2007 21:15:45 +0000"},
	}
	sts := CreateStringToSign(ModeHeaderAuth, "PUT", "/photos/puppy.jpg", nil, headers, "awsexamplebucket1")
	want := "PUT\n\nimage/jpeg\nTue, 27 Mar 2007 21:15:45 +0000\n/awsexamplebucket1/photos/puppy.jpg"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "iqRzw+ileNPu1fhspnRs8nOjjIA=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignList(t *testing.T) {
	headers := []Header{{"date", "Tue, 27 Mar 2007 19:42:41 +0000"}}
	sts := CreateStringToSign(ModeHeaderAuth, "GET", "/", nil, headers, "awsexamplebucket1")
	want := "GET\n\n\nTue, 27 Mar 2007 19:42:41 +0000\n/awsexamplebucket1/"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "m0WP8eCtspQl5Ahe6L1SozdX9YA=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignFetchACL(t *testing.T) {
	headers := []Header{{"date", "Tue, 27 Mar 2007 19:44:46 +0000"}}
	query := []Header{{"acl", ""}}
	sts := CreateStringToSign(ModeHeaderAuth, "GET", "/", query, headers, "awsexamplebucket1")
	want := "GET\n\n\nTue, 27 Mar 2007 19:44:46 +0000\n/awsexamplebucket1/?acl"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "82ZHiFIjc+WbcwFKGUVEQspPn+0=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignDelete(t *testing.T) {
	headers := []Header{
		{"date", "Tue, 27 Mar 2007 21:20:27 +0000"},
		{"x-amz-date", "Tue, 27 Mar 2007 21:20:26 +0000"},
	}
	sts := CreateStringToSign(ModeHeaderAuth, "DELETE", "/awsexamplebucket1/photos/puppy.jpg", nil, headers, "")
	want := "DELETE\n\n\n\nx-amz-date:Tue, 27 Mar 2007 21:20:26 +0000\n/awsexamplebucket1/photos/puppy.jpg"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "Ri1hpB1zpS9pGqR7y8kuNFCl4sE=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignUpload(t *testing.T) {
	headers := []Header{
		{"date", "Tue, 27 Mar 2007 21:06:08 +0000"},
		{"x-amz-acl", "public-read"},
		{"content-type", "application/x-download"},
		{"content-md5", "4gJE4saaMU4BqNR0kLY+lw=="},
		{"x-amz-meta-reviewedby", "joe@example.com"},
		{"x-amz-meta-reviewedby", "jane@example.com"},
		{"x-amz-meta-filechecksum", "0x02661779"},
		{"x-amz-meta-checksumalgorithm", "crc32"},
		{"content-disposition", "attachment; filename=database.dat"},
		{"content-encoding", "gzip"},
		{"content-length", "5913339"},
	}
	sts := CreateStringToSign(ModeHeaderAuth, "PUT", "/db-backup.dat.gz", nil, headers, "static.example.com")
	want := "PUT\n" +
		"4gJE4saaMU4BqNR0kLY+lw==\n" +
		"application/x-download\n" +
		"Tue, 27 Mar 2007 21:06:08 +0000\n" +
		"x-amz-acl:public-read\n" +
		"x-amz-meta-checksumalgorithm:crc32\n" +
		"x-amz-meta-filechecksum:0x02661779\n" +
		"x-amz-meta-reviewedby:joe@example.com,jane@example.com\n" +
		"/static.example.com/db-backup.dat.gz"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "jtBQa0Aq+DkULFI8qrpwIjGEx0E=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignListAllMyBuckets(t *testing.T) {
	headers := []Header{{"date", "Wed, 28 Mar 2007 01:29:59 +0000"}}
	sts := CreateStringToSign(ModeHeaderAuth, "GET", "/", nil, headers, "")
	want := "GET\n\n\nWed, 28 Mar 2007 01:29:59 +0000\n/"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "qGdzdERIC03wnaRNKh6OqZehG9s=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignUnicodeKeys(t *testing.T) {
	headers := []Header{{"date", "Wed, 28 Mar 2007 01:49:49 +0000"}}
	sts := CreateStringToSign(ModeHeaderAuth, "GET", "/dictionary/fran%C3%A7ais/pr%c3%a9f%c3%a8re", nil, headers, "")
	want := "GET\n\n\nWed, 28 Mar 2007 01:49:49 +0000\n/dictionary/fran%C3%A7ais/pr%c3%a9f%c3%a8re"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "DNEZGsoieTZ92F3bUfSPQcbGmlM=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestStringToSignPresignedURL(t *testing.T) {
	query := []Header{{"Expires", "1175139620"}}
	sts := CreateStringToSign(ModePresignedURL, "GET", "/photos/puppy.jpg", query, nil, "awsexamplebucket1")
	want := "GET\n\n\n1175139620\n/awsexamplebucket1/photos/puppy.jpg"
	if sts != want {
		t.Fatalf("string to sign mismatch:\ngot:  %q\nwant: %q", sts, want)
	}
	if sig := CalculateSignature(testSecretKey, sts); sig != "1No4mq5ETf02z8aet9voy6gui6E=" {
		t.Fatalf("signature mismatch: got %q", sig)
	}
}

func TestIncludedQuerySorted(t *testing.T) {
	for i := 1; i < len(includedQuery); i++ {
		if includedQuery[i-1] >= includedQuery[i] {
			t.Fatalf("includedQuery not sorted at %d: %q >= %q", i, includedQuery[i-1], includedQuery[i])
		}
	}
}
