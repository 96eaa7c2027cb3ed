package cmd

import (
	"fmt"
	"io"

	"foodgram-ui/internal/catalog"
	"foodgram-ui/internal/util"
)

// listEntries 打印注册表条目，typeFilter 非空时只打印该类型
func listEntries(w io.Writer, svc *util.RegistryService, kind, typeFilter string) error {
	c, err := svc.Get(kind)
	if err != nil {
		return err
	}

	count := 0
	for _, e := range catalog.Entries(c) {
		if typeFilter != "" && e.Type != typeFilter {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", nameStyle.Render(e.Name), dimStyle.Render(fmt.Sprintf("%s · %s", e.Type, e.Module)))
		count++
	}

	if count == 0 {
		fmt.Fprintln(w, dimStyle.Render("无匹配条目"))
		return nil
	}
	if verbose {
		fmt.Fprintf(w, "\n共 %d 项\n", count)
	}
	return nil
}

// resolveEntry 解析名称并打印条目详情
func resolveEntry(w io.Writer, svc *util.RegistryService, kind, name string) error {
	c, err := svc.Get(kind)
	if err != nil {
		return err
	}

	item, err := c.Lookup(name)
	if err != nil {
		return err
	}

	e := catalog.EntryOf(item)
	fmt.Fprintln(w, titleStyle.Render(e.Name))
	fmt.Fprintf(w, "  注册表: %s\n", kindStyle.Render(kind))
	fmt.Fprintf(w, "  类型: %s\n", e.Type)
	fmt.Fprintf(w, "  模块: %s\n", e.Module)
	return nil
}
