package errors

// ErrorReporter 接收需要记录的错误，通常由日志系统提供
type ErrorReporter func(err *AppError)

// DefaultErrorHandler 默认错误处理器实现
type DefaultErrorHandler struct {
	Reporter ErrorReporter
}

// HandleError 处理错误
func (h *DefaultErrorHandler) HandleError(err error) {
	if err == nil {
		return
	}

	appErr, ok := asAppError(err)
	if !ok {
		// 如果不是AppError，包装一下
		appErr = WrapError(ErrCodeInternalErr, "未知错误", err)
	}

	if h.Reporter != nil {
		h.Reporter(appErr)
	}
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func (h *DefaultErrorHandler) GetUserFriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	appErr, ok := asAppError(err)
	if !ok {
		return "发生未知错误"
	}

	switch appErr.Code {
	// 系统错误
	case ErrCodeInternalErr:
		return "系统错误，请联系技术支持"
	case ErrCodeInitializationFailed:
		return "应用程序初始化失败，请检查配置"
	case ErrCodeInvalidParam:
		return "参数无效，请检查输入"

	// 注册表错误
	case ErrCodeNotFound:
		return "名称未注册，请使用 list 命令查看可用名称"
	case ErrCodeDuplicateName:
		return "注册表中存在重复名称，请检查声明列表"
	case ErrCodeRegistryNotFound:
		return "注册表不存在，可用注册表为 components 和 pages"
	case ErrCodeRegistryDuplicate:
		return "注册表重复注册"

	// 配置错误
	case ErrCodeConfigInvalid, ErrCodeConfigLoadFailed, ErrCodeConfigParseFailed:
		return "配置文件错误，请检查配置文件"

	// 输出错误
	case ErrCodeRenderFailed:
		return "目录渲染失败，请尝试 --raw 输出或更换 catalog.style"
	case ErrCodeUIFailed:
		return "交互界面运行失败，请确认终端支持"

	// MCP错误
	case ErrCodeMCPServeFailed:
		return "MCP服务运行失败，请检查客户端连接"

	default:
		return appErr.Message
	}
}

// 默认错误处理器实例
var DefaultHandler = &DefaultErrorHandler{}

// HandleError 处理错误
func HandleError(err error) {
	DefaultHandler.HandleError(err)
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return DefaultHandler.GetUserFriendlyMessage(err)
}
