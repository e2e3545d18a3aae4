package utils

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "+91 98765 43210", "919876543210", "6123456789"}
	for _, number := range valid {
		if !ValidatePhoneNumber(number) {
			t.Fatalf("expected %q to be valid", number)
		}
	}

	invalid := []string{"12345", "5876543210", "98765432101234", ""}
	for _, number := range invalid {
		if ValidatePhoneNumber(number) {
			t.Fatalf("expected %q to be invalid", number)
		}
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	if got := NormalizePhoneNumber("098765 43210"); got != "919876543210" {
		t.Fatalf("NormalizePhoneNumber = %q, want 919876543210", got)
	}
	if got := NormalizePhoneNumber("+91 98765 43210"); got != "919876543210" {
		t.Fatalf("NormalizePhoneNumber = %q, want 919876543210", got)
	}
}

func TestDisplayPhoneNumber(t *testing.T) {
	if got := DisplayPhoneNumber("9876543210"); got != "+91 98765 43210" {
		t.Fatalf("DisplayPhoneNumber = %q, want +91 98765 43210", got)
	}
}
