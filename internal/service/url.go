package service

import "strings"

const (
	hostCommercial = "apps.powerapps.com"
	hostGov        = "apps.gov.powerapps.us"
)

// QueryParam is one extra key/value pair carried through to the redirect
// target verbatim, in first-seen order.
type QueryParam struct {
	Key   string
	Value string
}

// BuildRedirectURL constructs the destination play URL. Extra parameters
// are appended as-is, without URL encoding or reordering, preserving the
// historical behavior.
func BuildRedirectURL(environmentGUID, appGUID string, isGov bool, extra []QueryParam) string {
	host := hostCommercial
	if isGov {
		host = hostGov
	}

	var b strings.Builder
	b.WriteString("https://")
	b.WriteString(host)
	b.WriteString("/play/e/")
	b.WriteString(environmentGUID)
	b.WriteString("/a/")
	b.WriteString(appGUID)

	for i, p := range extra {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}
