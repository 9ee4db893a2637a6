package security

import "crypto/subtle"

// MatchPassword compares a stored password with the supplied one byte for byte.
//
// Passwords are stored in plain text in this demo. A real deployment must
// switch to a salted hash here; doing so changes the stored account format,
// so existing records would need migrating.
func MatchPassword(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
