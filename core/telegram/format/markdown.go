package format

import "regexp"

var mdV1Specials = regexp.MustCompile("([_*\\[`])")

// EscapeMarkdown escapes characters that Telegram's Markdown parse mode
// treats as formatting, so user-supplied text renders literally.
func EscapeMarkdown(text string) string {
	return mdV1Specials.ReplaceAllString(text, `\$1`)
}
