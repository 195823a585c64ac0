package scanning

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// DecodeText converts raw receipt bytes into text the extractors understand.
// Invalid UTF-8 is replaced with U+FFFD rather than rejected, a leading BOM is
// dropped, text is NFC normalized and line endings become "\n".
func DecodeText(data []byte) string {
	decoder := transform.Chain(unicode.UTF8BOM.NewDecoder(), norm.NFC)

	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		// The decoder replaces bad input instead of failing, so this only
		// guards against transformer errors
		decoded = []byte(strings.ToValidUTF8(string(data), "\uFFFD"))
	}

	return lineEndings.Replace(string(decoded))
}
