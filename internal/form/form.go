// Package form holds the draft state, local validation and payload assembly
// behind the dashboard's create/edit screens. Local checks and backend
// rejections feed the same field-error map so both render identically.
package form

import (
	"fmt"
	"math"
	"strings"
)

// Errors maps field names to messages. An empty map means the draft is valid.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// SanitizeNumeric strips everything but digits and the first decimal point
// from raw user input. Numeric draft fields store the sanitized string, not a
// parsed value, so a half-typed "12." survives round trips.
func SanitizeNumeric(value string) string {
	var b strings.Builder
	seenPoint := false
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatBytes renders a byte count for upload-rejection messages, e.g.
// "10 MB" or "900.5 KB".
func FormatBytes(size int64) string {
	if size == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	value := float64(size) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%s %s", trimZeros(fmt.Sprintf("%.2f", value)), units[i])
}

func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
