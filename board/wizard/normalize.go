package wizard

import (
	"strings"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// StripPhoneDigits keeps only digit characters, mirroring the as-typed
// stripping applicants see in the phone input
func StripPhoneDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComposePhone joins the country's dial code and the local digits with
// a single space, e.g. PE + "987654321" -> "+51 987654321"
func ComposePhone(country kernel.CountryCode, localDigits string) kernel.PhoneNumber {
	return kernel.PhoneNumber(country.DialCode() + " " + localDigits)
}

// NormalizeLinkedIn expands whatever the applicant typed into an
// absolute profile URL:
//   - input already starting with http passes through unchanged
//   - a linkedin.com address gets a protocol prefix
//   - a bare handle expands to https://linkedin.com/in/<handle>
func NormalizeLinkedIn(input string) kernel.LinkedInURL {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "http") {
		return kernel.LinkedInURL(trimmed)
	}
	if strings.HasPrefix(trimmed, "linkedin.com") || strings.HasPrefix(trimmed, "www.linkedin.com") {
		return kernel.LinkedInURL("https://" + trimmed)
	}
	handle := strings.TrimPrefix(trimmed, "@")
	return kernel.LinkedInURL("https://linkedin.com/in/" + handle)
}
