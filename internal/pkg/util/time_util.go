package util

import (
	"fmt"
	"time"
)

var serverTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseServerTime 解析服务端时间串，几种常见精度都接
func ParseServerTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range serverTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("failed to parse server time %q: %w", s, lastErr)
}

// FormatRelativeTime 相对时间标签
// 1分钟内 방금 전，1小时内 N분 전，24小时内 N시간 전，7天内 N일 전，再往前给绝对日期
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	if minutes < 1 {
		return "방금 전"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d분 전", minutes)
	}
	if hours < 24 {
		return fmt.Sprintf("%d시간 전", hours)
	}
	if days < 7 {
		return fmt.Sprintf("%d일 전", days)
	}
	return FormatAbsoluteDate(t)
}

// FormatAbsoluteDate ko-KR 格式的日期，如 2026. 8. 31.
func FormatAbsoluteDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}

// FormatServerTimeRelative 直接从服务端时间串到相对标签，解析失败时原样返回
func FormatServerTimeRelative(s string, now time.Time) string {
	t, err := ParseServerTime(s)
	if err != nil {
		return s
	}
	return FormatRelativeTime(t, now)
}
