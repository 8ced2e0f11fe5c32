package driftline

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestDeriveUIDFromDIDKnownVector(t *testing.T) {
	// Recompute the reference digest rather than trusting a copied literal.
	sum := sha256.Sum256([]byte("my-secret-salt" + "did:plc:abc123"))
	want := hex.EncodeToString(sum[:])[:12]

	got := DeriveUIDFromDID("did:plc:abc123", "my-secret-salt")
	if got != want {
		t.Errorf("DeriveUIDFromDID = %q, want %q", got, want)
	}

	// Pin the value so an accidental change to the derivation (digest,
	// concatenation order, truncation) cannot slip through both paths.
	if got != "fef99e9a34b2" {
		t.Errorf("DeriveUIDFromDID = %q, want pinned %q", got, "fef99e9a34b2")
	}
}

func TestDeriveUIDFromDIDDeterminism(t *testing.T) {
	tests := []struct {
		name string
		did  string
		salt string
	}{
		{"plc did", "did:plc:ewvi7nxzyoun6zhxrhs64oiz", "driftline-ios-2024"},
		{"web did", "did:web:example.com", "s3cr3t"},
		{"empty salt", "did:plc:abc123", ""},
		{"empty did", "", "only-salt"},
		{"both empty", "", ""},
		{"unicode", "did:plc:abc123", "sól-🧂"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := DeriveUIDFromDID(tt.did, tt.salt)
			for i := 0; i < 10; i++ {
				if got := DeriveUIDFromDID(tt.did, tt.salt); got != first {
					t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
				}
			}
		})
	}
}

func TestDeriveUIDFromDIDEmptyInputs(t *testing.T) {
	// SHA-256 of the empty string, first 12 hex characters.
	if got := DeriveUIDFromDID("", ""); got != "e3b0c44298fc" {
		t.Errorf("DeriveUIDFromDID(\"\", \"\") = %q, want %q", got, "e3b0c44298fc")
	}
}

func TestDeriveUIDFromDIDSaltSensitivity(t *testing.T) {
	const did = "did:plc:abc123"

	a := DeriveUIDFromDID(did, "my-secret-salt")
	b := DeriveUIDFromDID(did, "another-salt")
	if a == b {
		t.Errorf("distinct salts produced the same uid %q", a)
	}

	// The DID must matter too.
	c := DeriveUIDFromDID("did:plc:someoneelse", "my-secret-salt")
	if a == c {
		t.Errorf("distinct DIDs produced the same uid %q", a)
	}
}

func TestDeriveUIDFromDIDLengthAndCharset(t *testing.T) {
	const hexdigits = "0123456789abcdef"

	check := func(t *testing.T, did, salt string) {
		t.Helper()
		got := DeriveUIDFromDID(did, salt)
		if len(got) != 12 {
			t.Fatalf("DeriveUIDFromDID(%q, %q) = %q, want 12 characters, got %d", did, salt, got, len(got))
		}
		for _, r := range got {
			if !strings.ContainsRune(hexdigits, r) {
				t.Fatalf("DeriveUIDFromDID(%q, %q) = %q contains non-hex character %q", did, salt, got, r)
			}
		}
	}

	check(t, "did:plc:abc123", "my-secret-salt")
	check(t, "", "")

	// Arbitrary inputs too.
	for i := 0; i < 50; i++ {
		did := "did:plc:" + uuid.NewString()
		salt := uuid.NewString()
		check(t, did, salt)
	}
}

func TestDeriveUIDFromDIDMatchesDigest(t *testing.T) {
	// The result must always be a strict prefix of the full hex digest of
	// salt followed by did.
	for i := 0; i < 20; i++ {
		did := "did:plc:" + uuid.NewString()
		salt := uuid.NewString()

		sum := sha256.Sum256([]byte(salt + did))
		full := hex.EncodeToString(sum[:])

		if got := DeriveUIDFromDID(did, salt); !strings.HasPrefix(full, got) {
			t.Fatalf("DeriveUIDFromDID(%q, %q) = %q, digest is %q", did, salt, got, full)
		}
	}
}

func TestDeriveUIDFromDIDConcurrent(t *testing.T) {
	const did = "did:plc:ewvi7nxzyoun6zhxrhs64oiz"
	const salt = "driftline-ios-2024"

	want := DeriveUIDFromDID(did, salt)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := DeriveUIDFromDID(did, salt); got != want {
				t.Errorf("concurrent call returned %q, want %q", got, want)
			}
		}()
	}
	wg.Wait()
}
