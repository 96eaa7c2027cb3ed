package cmd

import (
	"github.com/spf13/cobra"

	"foodgram-ui/internal/components"
	"foodgram-ui/internal/util"
)

var componentType string

// componentsCmd represents the components command
var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "组件注册表",
	Long:  "查看和解析 Foodgram 前端的可复用组件",
}

// componentsListCmd represents the components list command
var componentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有组件",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEntries(cmd.OutOrStdout(), util.GetRegistryService(), components.Kind, componentType)
	},
}

// componentsResolveCmd represents the components resolve command
var componentsResolveCmd = &cobra.Command{
	Use:   "resolve [name]",
	Short: "按名称解析组件（区分大小写）",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveEntry(cmd.OutOrStdout(), util.GetRegistryService(), components.Kind, args[0])
	},
}

func init() {
	rootCmd.AddCommand(componentsCmd)
	componentsCmd.AddCommand(componentsListCmd)
	componentsCmd.AddCommand(componentsResolveCmd)

	componentsListCmd.Flags().StringVarP(&componentType, "type", "t", "", "按分类过滤 (layout, navigation, form, content, account, overlay, routing)")
}
