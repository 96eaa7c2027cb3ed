package util

import (
	"fmt"

	"foodgram-ui/internal/pkg/errors"
)

// 错误代码常量 - 指向通用错误处理系统中的错误代码
const (
	ErrCodeConfigInvalid        = errors.ErrCodeConfigInvalid        // 配置文件无效
	ErrCodeConfigParseFailed    = errors.ErrCodeConfigParseFailed    // 配置解析失败
	ErrCodeInvalidParam         = errors.ErrCodeInvalidParam         // 无效参数
	ErrCodeInternalErr          = errors.ErrCodeInternalErr          // 内部错误
	ErrCodeNotFound             = errors.ErrCodeNotFound             // 名称未注册
	ErrCodeInitializationFailed = errors.ErrCodeInitializationFailed // 初始化失败
	ErrCodeRegistryNotFound     = errors.ErrCodeRegistryNotFound     // 注册表不存在
	ErrCodeRegistryDuplicate    = errors.ErrCodeRegistryDuplicate    // 注册表重复注册
	ErrCodeUIFailed             = errors.ErrCodeUIFailed             // 交互界面运行失败
)

// AppError 应用错误结构 - 使用通用错误处理系统中的AppError
type AppError = errors.AppError

// 创建新的应用错误
func NewError(code, message string) *AppError {
	return errors.NewError(code, message)
}

// 创建带详情的应用错误
func NewErrorWithDetail(code, message, details string) *AppError {
	return errors.NewErrorWithDetails(code, message, details)
}

// 包装现有错误
func WrapError(code, message string, cause error) *AppError {
	return errors.WrapError(code, message, cause)
}

// 检查错误是否为指定类型
func IsErrorCode(err error, code string) bool {
	return errors.IsErrorCode(err, code)
}

// 获取错误代码
func GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return errors.GetUserFriendlyMessage(err)
}

// NewRegistryNotFoundError 创建注册表不存在错误
func NewRegistryNotFoundError(kind string) *AppError {
	return errors.NewErrorWithDetails(errors.ErrCodeRegistryNotFound, "注册表不存在",
		fmt.Sprintf("注册表: %s", kind))
}
