package apperrors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 错误分类 - 所有操作以这些哨兵错误之一返回失败结果，
// handler 层统一翻译成 HTTP 状态码，任何地方都不吞错误、不重试
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("permission denied")
	ErrValidation       = errors.New("validation failed")
	ErrDuplicate        = errors.New("duplicate")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Validationf 构造带说明的校验错误
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Duplicatef 构造带说明的重复操作错误
func Duplicatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, fmt.Sprintf(format, args...))
}

// NotFoundf 构造带说明的未找到错误
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Forbiddenf 构造带说明的越权错误
func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// FromDB 把 GORM 错误翻译成本包的错误分类。
// 需要 gorm.Config{TranslateError: true}，这样唯一约束冲突
// 会以 gorm.ErrDuplicatedKey 返回，而不是驱动各自的错误类型
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
