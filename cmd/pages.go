package cmd

import (
	"github.com/spf13/cobra"

	"foodgram-ui/internal/pages"
	"foodgram-ui/internal/util"
)

var pageSection string

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "页面注册表",
	Long:  "查看和解析 Foodgram 前端的路由页面",
}

// pagesListCmd represents the pages list command
var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有页面",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEntries(cmd.OutOrStdout(), util.GetRegistryService(), pages.Kind, pageSection)
	},
}

// pagesResolveCmd represents the pages resolve command
var pagesResolveCmd = &cobra.Command{
	Use:   "resolve [name]",
	Short: "按名称解析页面（区分大小写）",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveEntry(cmd.OutOrStdout(), util.GetRegistryService(), pages.Kind, args[0])
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.AddCommand(pagesListCmd)
	pagesCmd.AddCommand(pagesResolveCmd)

	pagesListCmd.Flags().StringVarP(&pageSection, "type", "t", "", "按分区过滤 (recipes, auth, account, commerce, info)")
}
