package cmd

import (
	"github.com/spf13/cobra"

	"foodgram-ui/internal/browse"
	"foodgram-ui/internal/config"
	"foodgram-ui/internal/util"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "交互式浏览注册表",
	Long:  "启动终端界面浏览组件和页面，Tab 切换注册表，/ 过滤，q 退出",
	RunE: func(cmd *cobra.Command, args []string) error {
		return browse.Run(util.GetRegistryService().All(), config.GetConfig().Browse)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
