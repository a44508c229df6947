package pass

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "horse" {
		t.Fatal("password stored in plain text")
	}
	if !VerifyPassword(hash, "horse") {
		t.Error("valid password rejected")
	}
	if VerifyPassword(hash, "pony") {
		t.Error("invalid password accepted")
	}
}
