package password

import "testing"

func TestHashAndCompare(t *testing.T) {
	svc := NewService()

	hashed, err := svc.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hashed == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.Compare(hashed, "s3cret-pass") {
		t.Fatal("expected matching password to compare true")
	}
	if svc.Compare(hashed, "wrong-pass") {
		t.Fatal("expected wrong password to compare false")
	}
}

func TestHashIsSalted(t *testing.T) {
	svc := NewService()

	first, err := svc.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := svc.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same input must differ")
	}
}
