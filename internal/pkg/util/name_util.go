package util

// UnknownUserName 作者信息形态异常时的兜底名
const UnknownUserName = "알 수 없음"

// NameInitial 头像占位用的首字符，空名给 U
func NameInitial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "U"
}
