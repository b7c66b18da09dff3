package i18n

import (
	"fmt"
	"strings"

	"github.com/escriba/internal/constants"

	"github.com/gin-gonic/gin"
)

// 站点语言常量
const (
	LocalePT = constants.LocalePtBR
	LocaleEN = constants.LocaleEnUS
)

// DefaultLocale 默认站点语言
const DefaultLocale = LocalePT

const localeQueryKey = "lang"

// ResolveLocale 解析请求语言：优先 lang 查询参数，其次 Accept-Language，最后回退默认
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := Normalize(c.Query(localeQueryKey)); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := Normalize(tag); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

// Normalize 将语言标签归一化为受支持的站点语言，未知标签返回空串
func Normalize(tag string) string {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(normalized, "pt"):
		return LocalePT
	case strings.HasPrefix(normalized, "en"):
		return LocaleEN
	}
	return ""
}

// T 查询指定语言的文案，缺失时回退英文，再回退 key 本身
func T(locale, key string) string {
	if table, ok := messages[normalizeOrDefault(locale)]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	if text, ok := messages[LocaleEN][key]; ok {
		return text
	}
	return key
}

// Sprintf 查询带占位符的文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func normalizeOrDefault(locale string) string {
	if normalized := Normalize(locale); normalized != "" {
		return normalized
	}
	return DefaultLocale
}
