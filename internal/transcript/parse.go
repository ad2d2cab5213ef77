package transcript

import (
	"encoding/xml"
	"html"
	"strings"
)

// ParseTimedText extracts the text content of every element in a timedtext
// XML document, in document order, each fragment trimmed, joined with single
// spaces. Returns "" when the document carries no text.
func ParseTimedText(raw string) string {
	d := xml.NewDecoder(strings.NewReader(raw))
	// Caption payloads are entity-heavy and not always well-formed.
	d.Strict = false
	d.AutoClose = xml.HTMLAutoClose
	d.Entity = xml.HTMLEntity

	var parts []string
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		cd, ok := tok.(xml.CharData)
		if !ok {
			continue
		}
		// timedtext double-escapes, so one more unescape pass.
		s := strings.TrimSpace(html.UnescapeString(string(cd)))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
