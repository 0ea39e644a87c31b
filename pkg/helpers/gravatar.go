package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL derives the default avatar for an email address: size 200,
// rating pg, "mystery man" fallback image.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
