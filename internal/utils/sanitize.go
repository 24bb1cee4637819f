package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// 帖子/评论/简介都是纯文本，入库前剥掉所有 HTML 标签
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText 清理用户提交的文本：剥标签、还原实体、去首尾空白
func SanitizeText(s string) string {
	cleaned := textPolicy.Sanitize(s)
	// StrictPolicy 会把 & < > 等转义成实体，存储层要的是原始文本
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
