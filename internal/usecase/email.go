package usecase

import "strings"

// normalizeEmail lowercases the domain and keeps the local part as typed,
// so a@x.com and a@X.COM name the same account.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
