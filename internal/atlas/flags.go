package atlas

import "strings"

// Resolver maps a flag code to an image location. The quiz core never
// hard-codes where flag art comes from; shells inject whatever source
// suits them (CDN URL, local asset bundle, emoji).
type Resolver func(code string) string

const flagCDNBase = "https://flagcdn.com/w320"

// FlagURL is the default resolver, serving 320px-wide PNGs from flagcdn.
func FlagURL(code string) string {
	return flagCDNBase + "/" + code + ".png"
}

// FlagEmoji converts an alpha-2 code to its regional-indicator emoji pair,
// which terminals render as the country's flag. Returns "" for malformed
// codes.
func FlagEmoji(code string) string {
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}
