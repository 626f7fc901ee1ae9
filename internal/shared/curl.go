// Utilities for rendering requests as cURL commands.
package shared

import (
	"fmt"
	"sort"
	"strings"
)

// CurlCommand renders an HTTP request as a copy-pasteable cURL command.
//
// Used by the api debug command so a failing backend call can be replayed
// outside the application.
func CurlCommand(method, url string, headers map[string]string, body []byte) string {
	var b strings.Builder
	b.WriteString("curl")

	if method != "" && method != "GET" {
		fmt.Fprintf(&b, " -X %s", method)
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " -H '%s: %s'", k, headers[k])
	}

	if len(body) > 0 {
		fmt.Fprintf(&b, " -d '%s'", strings.ReplaceAll(string(body), "'", `'\''`))
	}

	fmt.Fprintf(&b, " '%s'", url)
	return b.String()
}
