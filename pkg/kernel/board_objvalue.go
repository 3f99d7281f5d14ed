package kernel

import "strings"

type JobTitle string

type CompanyName string

type Email string

func (e Email) String() string { return string(e) }

// IsValid checks the address is RFC-shaped: local@domain.tld
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t\n")
}

type FullName string

func (n FullName) String() string { return string(n) }

type PhoneNumber string

func (p PhoneNumber) String() string { return string(p) }

type LinkedInURL string

func (u LinkedInURL) String() string { return string(u) }

type BucketURL string

func (u BucketURL) String() string { return string(u) }

// CountryCode is an ISO 3166-1 alpha-2 country selector used for
// phone dial-code composition
type CountryCode string

const (
	CountryPE CountryCode = "PE"
	CountryUS CountryCode = "US"
	CountryMX CountryCode = "MX"
	CountryCO CountryCode = "CO"
	CountryCL CountryCode = "CL"
	CountryAR CountryCode = "AR"
	CountryEC CountryCode = "EC"
	CountryBO CountryCode = "BO"
	CountryBR CountryCode = "BR"
	CountryVE CountryCode = "VE"
	CountryES CountryCode = "ES"
	CountryCA CountryCode = "CA"
	CountryGB CountryCode = "GB"
)

var dialCodes = map[CountryCode]string{
	CountryPE: "+51",
	CountryUS: "+1",
	CountryMX: "+52",
	CountryCO: "+57",
	CountryCL: "+56",
	CountryAR: "+54",
	CountryEC: "+593",
	CountryBO: "+591",
	CountryBR: "+55",
	CountryVE: "+58",
	CountryES: "+34",
	CountryCA: "+1",
	CountryGB: "+44",
}

// DialCode returns the international dialing prefix for the country,
// empty string when the country is unknown
func (c CountryCode) DialCode() string {
	return dialCodes[CountryCode(strings.ToUpper(string(c)))]
}

// IsValid reports whether the country is in the supported set
func (c CountryCode) IsValid() bool {
	_, ok := dialCodes[CountryCode(strings.ToUpper(string(c)))]
	return ok
}
