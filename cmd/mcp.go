package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"foodgram-ui/internal/config"
	"foodgram-ui/internal/mcp"
	"foodgram-ui/internal/pkg/errors"
	"foodgram-ui/internal/util"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP服务",
	Long:  "通过 Model Context Protocol (MCP) 向外部客户端提供注册表查询",
}

// mcpServeCmd represents the mcp serve command
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "在标准输入输出上启动MCP服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 标准输出承载 MCP 协议帧，日志不能写到那里
		logging := config.GetConfig().Logging
		if output := stdioSafeLogOutput(logging.Output); output != logging.Output {
			level := logging.Level
			if verbose {
				level = "debug"
			}
			if err := util.InitLogger(level, logging.Format, output, logging.File); err != nil {
				return errors.WrapConfigError("日志系统初始化失败", err)
			}
			util.Warnw("MCP服务使用标准输出传输，日志改写到标准错误", map[string]any{
				"configured_output": logging.Output,
			})
		}

		server := mcp.NewServer(config.GetConfig().MCP, util.GetRegistryService())
		return server.Run(ctx)
	},
}

// stdioSafeLogOutput 返回不与 stdio 传输冲突的日志输出
func stdioSafeLogOutput(output string) string {
	if output == "stdout" {
		return "stderr"
	}
	return output
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.AddCommand(mcpServeCmd)
}
