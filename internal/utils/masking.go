package utils

import "strings"

// MaskAadhaar hides all but the last four digits of an Aadhaar number,
// formatted as XXXX-XXXX-1234. Values shorter than four characters are
// masked entirely.
func MaskAadhaar(aadhaar string) string {
	cleaned := strings.ReplaceAll(aadhaar, "-", "")
	if len(cleaned) < 4 {
		return "XXXX-XXXX-XXXX"
	}
	return "XXXX-XXXX-" + cleaned[len(cleaned)-4:]
}

// MaskMobile hides all but the last four digits of a mobile number.
func MaskMobile(mobile string) string {
	if len(mobile) < 4 {
		return "XXXXXX"
	}
	return "XXXXXX" + mobile[len(mobile)-4:]
}
