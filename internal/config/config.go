package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"foodgram-ui/internal/pkg/errors"
	"foodgram-ui/internal/util"
)

// 全局配置实例
var Config *AppConfig

// 最近一次加载的配置文件路径
var LoadedPath string

// 应用配置结构
type AppConfig struct {
	Logging LoggingConfig `toml:"logging"`
	Catalog CatalogConfig `toml:"catalog"`
	Browse  BrowseConfig  `toml:"browse"`
	MCP     MCPConfig     `toml:"mcp"`
}

// 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
	Output string `toml:"output"` // stdout, stderr, file
	File   string `toml:"file"`   // 日志文件路径
}

// 目录渲染配置
type CatalogConfig struct {
	Style    string `toml:"style"`     // auto, dark, light, notty, ascii, dracula, pink, tokyo-night
	WordWrap int    `toml:"word_wrap"` // 0 表示不换行
}

// 交互浏览配置
type BrowseConfig struct {
	AltScreen bool `toml:"alt_screen"`
}

// MCP服务配置
type MCPConfig struct {
	ServerName    string `toml:"server_name"`
	ServerVersion string `toml:"server_version"`
}

// 支持的目录样式
var validStyles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// 默认配置内容
const defaultConfig = `# foodgram-ui 配置文件

[logging]
level = "warn"
format = "text"
output = "stderr"
file = ""

[catalog]
style = "auto"
word_wrap = 100

[browse]
alt_screen = true

[mcp]
server_name = "foodgram-ui"
server_version = "1.0.0"
`

// Default 返回默认配置
func Default() *AppConfig {
	var config AppConfig
	if _, err := toml.Decode(defaultConfig, &config); err != nil {
		panic(err)
	}
	return &config
}

// 加载配置文件
func LoadConfig(configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 配置文件不存在时创建默认配置
	if !util.FileExists(configPath) {
		if err := createDefaultConfig(configPath); err != nil {
			return errors.WrapErrorWithDetails(errors.ErrCodeConfigLoadFailed, "创建默认配置文件失败", err,
				fmt.Sprintf("配置文件路径: %s", configPath))
		}
	}

	// 以默认值为底，文件中出现的字段覆盖默认值
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return errors.WrapErrorWithDetails(errors.ErrCodeConfigParseFailed, "解析配置文件失败", err,
			fmt.Sprintf("配置文件路径: %s", configPath))
	}

	overrideWithEnv(config)

	if err := validateConfig(config); err != nil {
		return err
	}

	Config = config
	LoadedPath = configPath
	return nil
}

// 获取默认配置文件路径
func getDefaultConfigPath() string {
	if path := os.Getenv("FOODGRAM_UI_CONFIG"); path != "" {
		return path
	}

	// 其次使用当前目录下的config.toml
	if util.FileExists("config.toml") {
		return "config.toml"
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}

	return filepath.Join(homeDir, ".foodgram-ui", "config.toml")
}

// 创建默认配置文件
func createDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(configPath, []byte(defaultConfig), 0644)
}

// 使用环境变量覆盖配置
func overrideWithEnv(config *AppConfig) {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if style := os.Getenv("FOODGRAM_UI_CATALOG_STYLE"); style != "" {
		config.Catalog.Style = style
	}
}

// 验证配置
func validateConfig(config *AppConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, config.Logging.Level) {
		return errors.NewConfigErrorWithDetails("无效的日志级别", config.Logging.Level)
	}

	if config.Logging.Format != "text" && config.Logging.Format != "json" {
		return errors.NewConfigErrorWithDetails("无效的日志格式", config.Logging.Format)
	}

	if !slices.Contains(validStyles, config.Catalog.Style) {
		return errors.NewConfigErrorWithDetails("无效的目录样式", config.Catalog.Style)
	}

	if config.Catalog.WordWrap < 0 {
		return errors.NewConfigErrorWithDetails("无效的换行宽度", fmt.Sprintf("word_wrap: %d", config.Catalog.WordWrap))
	}

	if config.MCP.ServerName == "" {
		return errors.NewConfigError("MCP服务名称不能为空")
	}

	return nil
}

// 获取当前配置，未加载时返回默认配置
func GetConfig() *AppConfig {
	if Config == nil {
		return Default()
	}
	return Config
}
