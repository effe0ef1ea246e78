package identity

import (
	"regexp"
	"strings"
)

// emailPattern matches local@domain.tld with a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// priorityDomains are personal-mail providers preferred over corporate or
// institutional addresses, in fixed priority order.
var priorityDomains = []string{"gmail.com", "outlook.com", "yahoo.com", "hotmail.com"}

// ExtractEmail returns one email address from the text, preferring personal
// providers when several addresses are present. Returns "" when none match.
func ExtractEmail(text string) string {
	emails := emailPattern.FindAllString(text, -1)
	if len(emails) == 0 {
		return ""
	}

	for _, email := range emails {
		for _, domain := range priorityDomains {
			if strings.HasSuffix(email, domain) {
				return email
			}
		}
	}

	return emails[0]
}
