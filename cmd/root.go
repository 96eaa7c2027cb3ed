package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"foodgram-ui/internal/components"
	"foodgram-ui/internal/config"
	"foodgram-ui/internal/pages"
	"foodgram-ui/internal/pkg/errors"
	"foodgram-ui/internal/util"
	"foodgram-ui/pkg/registry"
)

var (
	// configPath 是配置文件的路径
	configPath string
	// verbose 标志用于启用详细输出
	verbose bool
)

// rootCmd 代表没有调用子命令时的基础命令
var rootCmd = &cobra.Command{
	Use:   "foodgram-ui",
	Short: "Foodgram 前端组件与页面注册表",
	Long: `foodgram-ui 汇总 Foodgram 前端的可复用组件和路由页面，
提供按名称解析、目录渲染、交互浏览和 MCP 服务功能。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// 默认行为：显示状态信息
		showStatus()
	},
}

// Execute 将所有子命令添加到根命令并适当设置标志。
// 这是由 main.main() 调用的。它只需要对 rootCmd 调用一次。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError 向终端输出错误提示。日志写入文件时另交给错误处理器记录，
// 日志在终端时不重复输出
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "命令执行失败: %s\n  %v\n", util.GetUserFriendlyMessage(err), err)
	if config.GetConfig().Logging.Output == "file" {
		errors.HandleError(err)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径 (默认: $FOODGRAM_UI_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")
}

// initializeApp 初始化应用
func initializeApp() error {
	// 1. 读取工作目录下的 .env，已存在的环境变量不会被覆盖
	_ = godotenv.Load()

	// 2. 加载配置文件，路径为空时由配置层按环境变量和默认位置查找
	if err := config.LoadConfig(configPath); err != nil {
		return errors.WrapConfigError("配置加载失败", err)
	}

	// 3. 根据verbose标志调整日志级别
	logging := config.GetConfig().Logging
	logLevel := logging.Level
	if verbose {
		logLevel = "debug"
	}

	// 4. 初始化日志系统
	if err := util.InitLogger(logLevel, logging.Format, logging.Output, logging.File); err != nil {
		return errors.WrapConfigError("日志系统初始化失败", err)
	}

	util.Debugw("配置详情", map[string]any{
		"log_level":   logLevel,
		"config_path": config.LoadedPath,
	})

	// 5. 登记组件和页面注册表
	if err := initializeRegistries(util.GetRegistryService()); err != nil {
		return util.WrapError(util.ErrCodeInitializationFailed, "注册表初始化失败", err)
	}

	return nil
}

// initializeRegistries 将进程级注册表登记到注册服务，已登记的种类跳过
func initializeRegistries(svc *util.RegistryService) error {
	catalogs := []registry.Catalog{components.Registry(), pages.Registry()}
	for _, c := range catalogs {
		if _, err := svc.Get(c.Kind()); err == nil {
			continue
		}
		if err := svc.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// showStatus 显示应用状态
func showStatus() {
	fmt.Println(titleStyle.Render("Foodgram UI 注册表"))
	for _, c := range util.GetRegistryService().All() {
		fmt.Printf("  %s: %d\n", kindStyle.Render(c.Kind()), c.Len())
	}
	fmt.Printf("配置文件: %s\n", config.LoadedPath)
	fmt.Printf("日志级别: %s\n", config.GetConfig().Logging.Level)
	fmt.Println("\n使用 'foodgram-ui --help' 查看可用命令")
}
