package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/escriba/internal/constants"
)

// Slugify 由标题派生 slug：小写化，空白折叠为连字符，去掉其余符号
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	lastHyphen := true
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > constants.PostSlugMaxLength {
		slug = strings.Trim(slug[:constants.PostSlugMaxLength], "-")
	}
	return slug
}

// slugCounter 查询某个候选 slug 的占用数
type slugCounter func(slug string) (int64, error)

// ensureUniqueSlug 在 base 被占用时追加数字后缀直到可用
func ensureUniqueSlug(base string, count slugCounter) (string, error) {
	if base == "" {
		base = "post"
	}
	candidate := base
	for i := 2; ; i++ {
		taken, err := count(candidate)
		if err != nil {
			return "", err
		}
		if taken == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
