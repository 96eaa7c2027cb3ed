package config

import (
	"os"
	"path/filepath"
	"testing"

	"foodgram-ui/internal/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FOODGRAM_UI_CATALOG_STYLE", "")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.toml")

	configContent := `
[logging]
level = "debug"
format = "json"
output = "stdout"

[catalog]
style = "notty"
word_wrap = 60

[mcp]
server_name = "test-ui"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if Config.Logging.Level != "debug" {
		t.Errorf("期望日志级别为 'debug'，实际为 '%s'", Config.Logging.Level)
	}
	if Config.Catalog.Style != "notty" || Config.Catalog.WordWrap != 60 {
		t.Errorf("目录配置不正确: %+v", Config.Catalog)
	}
	if Config.MCP.ServerName != "test-ui" {
		t.Errorf("期望MCP服务名称为 'test-ui'，实际为 '%s'", Config.MCP.ServerName)
	}
	// 文件中未出现的字段保留默认值
	if Config.MCP.ServerVersion != "1.0.0" {
		t.Errorf("期望保留默认版本 '1.0.0'，实际为 '%s'", Config.MCP.ServerVersion)
	}
	if !Config.Browse.AltScreen {
		t.Error("期望保留默认 alt_screen = true")
	}
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FOODGRAM_UI_CATALOG_STYLE", "")

	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("加载默认配置失败: %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("期望创建默认配置文件: %v", err)
	}
	if Config.Catalog.Style != "auto" {
		t.Errorf("期望默认样式为 'auto'，实际为 '%s'", Config.Catalog.Style)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FOODGRAM_UI_CATALOG_STYLE", "dracula")

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if Config.Logging.Level != "error" {
		t.Errorf("期望环境变量覆盖日志级别为 'error'，实际为 '%s'", Config.Logging.Level)
	}
	if Config.Catalog.Style != "dracula" {
		t.Errorf("期望环境变量覆盖样式为 'dracula'，实际为 '%s'", Config.Catalog.Style)
	}
}

func TestLoadConfig_EnvPath(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FOODGRAM_UI_CATALOG_STYLE", "")

	configPath := filepath.Join(t.TempDir(), "env.toml")
	if err := os.WriteFile(configPath, []byte("[catalog]\nstyle = \"ascii\"\n"), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}
	t.Setenv("FOODGRAM_UI_CONFIG", configPath)

	if err := LoadConfig(""); err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if Config.Catalog.Style != "ascii" {
		t.Errorf("期望从环境变量路径读取样式 'ascii'，实际为 '%s'", Config.Catalog.Style)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FOODGRAM_UI_CATALOG_STYLE", "")

	testCases := []struct {
		name    string
		content string
		code    string
	}{
		{"日志级别", "[logging]\nlevel = \"trace\"\n", errors.ErrCodeConfigInvalid},
		{"目录样式", "[catalog]\nstyle = \"neon\"\n", errors.ErrCodeConfigInvalid},
		{"换行宽度", "[catalog]\nword_wrap = -1\n", errors.ErrCodeConfigInvalid},
		{"服务名称", "[mcp]\nserver_name = \"\"\n", errors.ErrCodeConfigInvalid},
		{"语法错误", "[logging\nlevel = ", errors.ErrCodeConfigParseFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tc.content), 0644); err != nil {
				t.Fatalf("创建测试配置文件失败: %v", err)
			}

			err := LoadConfig(configPath)
			if !errors.IsErrorCode(err, tc.code) {
				t.Errorf("期望错误代码为 %s，实际为: %v", tc.code, err)
			}
		})
	}
}

func TestGetConfigDefaults(t *testing.T) {
	saved := Config
	defer func() { Config = saved }()

	Config = nil
	cfg := GetConfig()
	if cfg.Logging.Level != "warn" || cfg.MCP.ServerName != "foodgram-ui" {
		t.Errorf("默认配置不正确: %+v", cfg)
	}
}
