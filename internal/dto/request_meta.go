package dto

// RequestMeta carries request-context attributes that end up in the audit
// trail. The audit recorder falls back to a loopback placeholder when the
// address is unavailable (e.g. internal callers).
type RequestMeta struct {
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
