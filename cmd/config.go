package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"foodgram-ui/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置管理",
	Long:  "查看 foodgram-ui 的配置文件和设置",
}

// configShowCmd represents the show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "显示当前配置",
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

// showConfig 显示配置信息
func showConfig() {
	cfg := config.GetConfig()
	fmt.Println("当前配置:")
	fmt.Printf("  配置文件: %s\n", config.LoadedPath)
	fmt.Printf("  日志级别: %s\n", cfg.Logging.Level)
	fmt.Printf("  目录样式: %s\n", cfg.Catalog.Style)
	fmt.Printf("  MCP服务: %s %s\n", cfg.MCP.ServerName, cfg.MCP.ServerVersion)

	if verbose {
		fmt.Printf("  日志格式: %s\n", cfg.Logging.Format)
		fmt.Printf("  日志输出: %s\n", cfg.Logging.Output)
		fmt.Printf("  换行宽度: %d\n", cfg.Catalog.WordWrap)
		fmt.Printf("  备用屏幕: %t\n", cfg.Browse.AltScreen)
	}
}
