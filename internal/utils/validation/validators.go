// Package validation holds the field-level format predicates used to gate
// client submissions. They are advisory only; authoritative validation
// remains with the backend that owns the data.
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)
	currencyPattern   = regexp.MustCompile(`^[A-Z]{3}$`)
	postalCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\- ]{2,9}$`)
	taxIDPattern      = regexp.MustCompile(`^[A-Za-z0-9\-]{8,15}$`)
	ssnPattern        = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	digitsOnly        = regexp.MustCompile(`^\d+$`)

	// Document numbers follow a per-type prefix with a 4-digit and a 6-digit
	// group, e.g. INV-2024-000123.
	documentNumberPatterns = map[string]*regexp.Regexp{
		"INVOICE": regexp.MustCompile(`^INV-\d{4}-\d{6}$`),
		"BILL":    regexp.MustCompile(`^BILL-\d{4}-\d{6}$`),
		"JOURNAL": regexp.MustCompile(`^JE-\d{4}-\d{6}$`),
	}
)

// IsValidEmail reports whether s has a plausible email shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s has a plausible phone number shape.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidURL reports whether s parses as an absolute http(s) URL.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidCurrencyCode reports whether s is a 3-letter uppercase code.
func IsValidCurrencyCode(s string) bool {
	return currencyPattern.MatchString(s)
}

// IsValidPostalCode reports whether s has a plausible postal code shape.
func IsValidPostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

// IsValidTaxID reports whether s has a plausible tax identifier shape.
func IsValidTaxID(s string) bool {
	return taxIDPattern.MatchString(s)
}

// IsValidSSN reports whether s matches the NNN-NN-NNNN shape.
func IsValidSSN(s string) bool {
	return ssnPattern.MatchString(s)
}

// IsValidCreditCard reports whether s passes the Luhn checksum. Spaces and
// dashes are ignored.
func IsValidCreditCard(s string) bool {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(s) < 13 || len(s) > 19 || !digitsOnly.MatchString(s) {
		return false
	}
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// IsValidRoutingNumber reports whether s passes the 9-digit ABA checksum.
func IsValidRoutingNumber(s string) bool {
	if len(s) != 9 || !digitsOnly.MatchString(s) {
		return false
	}
	sum := 0
	for i := 0; i < 9; i += 3 {
		sum += 3 * int(s[i]-'0')
		sum += 7 * int(s[i+1]-'0')
		sum += int(s[i+2] - '0')
	}
	return sum%10 == 0
}

// IsValidPercentage reports whether v lies in [0, 100].
func IsValidPercentage(v float64) bool {
	return v >= 0 && v <= 100
}

// HasMaxDecimalPlaces reports whether the numeric string s carries at most
// maxPlaces fractional digits.
func HasMaxDecimalPlaces(s string, maxPlaces int) bool {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return true
	}
	return len(s)-dot-1 <= maxPlaces
}

// IsValidDocumentNumber reports whether number matches the pattern for the
// given document type (INVOICE, BILL or JOURNAL).
func IsValidDocumentNumber(documentType, number string) bool {
	pattern, ok := documentNumberPatterns[documentType]
	if !ok {
		return false
	}
	return pattern.MatchString(number)
}
