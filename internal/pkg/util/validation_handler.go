package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// 注册表单的两条固定规则，与服务端约定保持一致
var (
	userIDRegex   = regexp.MustCompile(`^[a-z0-9]{5,20}$`)
	userNameRegex = regexp.MustCompile(`^[가-힣a-zA-Z0-9]{2,10}$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("user_id", func(fl validator.FieldLevel) bool {
		return userIDRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("user_name", func(fl validator.FieldLevel) bool {
		return userNameRegex.MatchString(fl.Field().String())
	})
}

// ValidateDTO 按结构体 tag 做整体校验
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

// VarValid 单值校验，供逐字段的增量校验路径使用
func VarValid(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}
