package sanitizer

import "strings"

// NormalizeEmail lowercases the domain part of an address. The local part is
// left untouched since mailbox names may be case-sensitive.
// Values without exactly one "@" are returned unchanged.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || strings.Count(email, "@") != 1 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
