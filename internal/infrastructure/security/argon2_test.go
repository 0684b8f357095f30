package security

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := NewArgon2Hasher(DefaultParams())
	encoded, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h.Verify("correct horse battery staple", encoded) {
		t.Fatal("verify should accept the right password")
	}
	if h.Verify("wrong password", encoded) {
		t.Fatal("verify should reject a wrong password")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	h := NewArgon2Hasher(DefaultParams())
	if h.Verify("anything", "not-an-argon2-hash") {
		t.Fatal("verify should reject malformed hashes")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h := NewArgon2Hasher(DefaultParams())
	a, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
}
