package handler

import (
	"strings"

	"github.com/amaumene/appredirect/internal/service"
)

// extraParams returns the query parameters other than app_name as
// key/value pairs in first-seen order. Pairs are kept verbatim: values
// are neither decoded nor re-encoded, so the redirect target carries
// exactly the bytes the caller sent. url.Values cannot be used here
// because it loses ordering and re-encodes values.
func extraParams(rawQuery string) []service.QueryParam {
	if rawQuery == "" {
		return nil
	}

	var params []service.QueryParam
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == appNameParam {
			continue
		}
		params = append(params, service.QueryParam{Key: key, Value: value})
	}
	return params
}
