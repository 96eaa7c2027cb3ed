package util

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"warning": LogLevelWarn,
		"warn":    LogLevelWarn,
		"error":   LogLevelError,
		"unknown": LogLevelInfo,
	}

	for input, expected := range testCases {
		if got := ParseLogLevel(input); got != expected {
			t.Errorf("ParseLogLevel(%q) 期望为 %v，实际为 %v", input, expected, got)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelWarn, "text", &buf, false)

	logger.Info("不应输出")
	if buf.Len() != 0 {
		t.Errorf("低于级别的日志不应输出，实际输出: %s", buf.String())
	}

	logger.Warnw("名称未注册", map[string]any{"name": "header", "kind": "components"})
	line := buf.String()
	if !strings.Contains(line, "WARN 名称未注册") {
		t.Errorf("日志缺少级别或消息: %s", line)
	}
	if !strings.Contains(line, "| kind=components name=header") {
		t.Errorf("字段应按键排序输出: %s", line)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelDebug, "json", &buf, false)

	logger.Debugw("注册表已登记", map[string]any{"kind": "pages", "count": 16})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("JSON日志无法解析: %v, 内容: %s", err, buf.String())
	}
	if entry["level"] != "DEBUG" || entry["message"] != "注册表已登记" {
		t.Errorf("JSON日志字段不正确: %v", entry)
	}
	if entry["count"] != float64(16) {
		t.Errorf("期望 count 为 16，实际为 %v", entry["count"])
	}
}

func TestLogErrorIncludesCode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelDebug, "text", &buf, false)

	logger.LogError(NewErrorWithDetail(ErrCodeNotFound, "名称未注册", "名称: header"), "resolve")

	line := buf.String()
	if !strings.Contains(line, "error_code="+ErrCodeNotFound) {
		t.Errorf("日志应包含错误代码: %s", line)
	}
	if !strings.Contains(line, "context=resolve") {
		t.Errorf("日志应包含上下文: %s", line)
	}
}

func TestInitLogger(t *testing.T) {
	saved := DefaultLogger
	defer func() { DefaultLogger = saved }()

	if err := InitLogger("info", "text", "file", ""); !IsErrorCode(err, ErrCodeConfigInvalid) {
		t.Errorf("文件输出缺少路径应返回配置错误，实际为: %v", err)
	}

	if err := InitLogger("info", "text", "syslog", ""); !IsErrorCode(err, ErrCodeConfigInvalid) {
		t.Errorf("未知输出应返回配置错误，实际为: %v", err)
	}

	logFile := filepath.Join(t.TempDir(), "app.log")
	if err := InitLogger("debug", "json", "file", logFile); err != nil {
		t.Fatalf("初始化文件日志失败: %v", err)
	}
	if DefaultLogger.level != LogLevelDebug {
		t.Errorf("期望日志级别为 debug，实际为 %v", DefaultLogger.level)
	}
}
