package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "asha.k@mail.example.in", "x+y@d.io"}
	invalid := []string{"", "a@x", "ax.com", "a@@x.com", "a b@x.com", "a@x .com", " a@x.com"}

	for _, s := range valid {
		assert.True(t, IsValidEmail(s), "expected %q to be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), "expected %q to be invalid", s)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.True(t, IsValidPhone("0000000000"))

	for _, s := range []string{"", "987654321", "98765432101", "98765x3210", " 987654321", "९८७६५४३२१०"} {
		assert.False(t, IsValidPhone(s), "expected %q to be invalid", s)
	}
}

func TestIsValidVehicleNumber(t *testing.T) {
	for _, s := range []string{"MH12AB1234", "mh12ab1234", "KA01A1234", "dl05c9999"} {
		assert.True(t, IsValidVehicleNumber(s), "expected %q to be valid", s)
	}
	for _, s := range []string{"MH1AB1234", "1212AB1234", "MH12ABC1234", "MH12AB123", "MH12AB12345", "", "MH 12 AB 1234"} {
		assert.False(t, IsValidVehicleNumber(s), "expected %q to be invalid", s)
	}
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount("50", 50))
	assert.True(t, IsValidAmount(" 500 ", 50))
	assert.False(t, IsValidAmount("49", 50))
	assert.False(t, IsValidAmount("abc", 50))
	assert.False(t, IsValidAmount("", 50))
	assert.False(t, IsValidAmount("50.5", 50))
	assert.False(t, IsValidAmount("0", 0))
	assert.False(t, IsValidAmount("-10", -20))
}
