package credentials

import "testing"

func TestHash_NeverPlaintext(t *testing.T) {
	digest, err := Hash("S3cret!pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "" {
		t.Fatalf("expected digest, got empty")
	}
	if digest == "S3cret!pass" {
		t.Fatalf("digest equals plaintext")
	}
}

func TestHash_RandomSalt(t *testing.T) {
	a, err := Hash("S3cret!pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash("S3cret!pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two digests of the same password are identical")
	}
}

func TestHash_EmptyInput(t *testing.T) {
	digest, err := Hash("")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest != "" {
		t.Fatalf("expected empty digest for empty password, got %q", digest)
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	for _, p := range []string{"a", "Abcdefg!", "long password with spaces"} {
		digest, err := Hash(p)
		if err != nil {
			t.Fatalf("Hash(%q) returned error: %v", p, err)
		}
		if !Verify(p, digest) {
			t.Fatalf("Verify(%q, Hash(%q)) = false", p, p)
		}
	}
}

func TestVerify_Mismatch(t *testing.T) {
	digest, _ := Hash("correct")
	if Verify("wrong", digest) {
		t.Fatalf("expected mismatch to report false")
	}
}

func TestVerify_MissingInputs(t *testing.T) {
	digest, _ := Hash("something")
	if Verify("", digest) {
		t.Fatalf("empty candidate should report false")
	}
	if Verify("something", "") {
		t.Fatalf("empty digest should report false")
	}
	if Verify("something", "%%%not-base64%%%") {
		t.Fatalf("undecodable digest should report false")
	}
}

func TestNormalizeDisplayName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{" aLICE   bOB ", "Alice Bob"},
		{"alice bob", "Alice Bob"},
		{"carol", "Carol"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDisplayName(tc.in); got != tc.want {
			t.Fatalf("NormalizeDisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
