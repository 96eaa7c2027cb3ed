package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"foodgram-ui/internal/catalog"
	"foodgram-ui/internal/config"
	"foodgram-ui/internal/util"
)

var catalogRaw bool

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "输出组件和页面目录",
	Long:  "以 Markdown 表格汇总所有注册表，默认渲染到终端，--raw 输出原始 Markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		md := catalog.Markdown(util.GetRegistryService().All()...)
		if catalogRaw {
			fmt.Print(md)
			return nil
		}

		out, err := catalog.Render(md, config.GetConfig().Catalog)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogRaw, "raw", false, "输出原始 Markdown")
}
