package utils

import (
	"strings"
	"unicode"
)

// Strip 清洗输入字段，去除首尾空白以及逗号和句点
func Strip(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '.'
	})
}

// StripPtr 清洗可选字段，nil原样返回
func StripPtr(s *string) *string {
	if s == nil {
		return nil
	}
	stripped := Strip(*s)
	return &stripped
}
