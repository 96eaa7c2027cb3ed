// Package catalog 将注册表内容整理为 Markdown 目录，并用 glamour 渲染到终端
package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"foodgram-ui/internal/config"
	"foodgram-ui/internal/pkg/errors"
	"foodgram-ui/pkg/registry"
)

// moduled 由能报告自身模块路径的条目实现
type moduled interface {
	Module() string
}

// Entry 是目录中的一行
type Entry struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Module string `json:"module,omitempty"`
}

// Entries 按注册顺序展开注册表条目
func Entries(c registry.Catalog) []Entry {
	names := c.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		item, err := c.Lookup(name)
		if err != nil {
			continue
		}
		entries = append(entries, EntryOf(item))
	}
	return entries
}

// EntryOf 将单个条目转换为目录行
func EntryOf(item registry.Item) Entry {
	entry := Entry{Name: item.Name(), Type: item.Type()}
	if m, ok := item.(moduled); ok {
		entry.Module = m.Module()
	}
	return entry
}

// Markdown 为每个注册表生成一节表格，顺序与参数一致
func Markdown(catalogs ...registry.Catalog) string {
	var b strings.Builder
	b.WriteString("# Foodgram UI 注册表目录\n")

	for _, c := range catalogs {
		if c == nil {
			continue
		}
		fmt.Fprintf(&b, "\n## %s (%d)\n\n", c.Kind(), c.Len())
		b.WriteString("| 名称 | 类型 | 模块 |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, e := range Entries(c) {
			module := e.Module
			if module == "" {
				module = "-"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", e.Name, e.Type, module)
		}
	}

	return b.String()
}

// NewRenderer 按配置创建终端渲染器
func NewRenderer(cfg config.CatalogConfig) (*glamour.TermRenderer, error) {
	style := glamour.WithAutoStyle()
	if cfg.Style != "" && cfg.Style != "auto" {
		style = glamour.WithStandardStyle(cfg.Style)
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(cfg.WordWrap),
	)
	if err != nil {
		return nil, errors.WrapRenderError("创建Markdown渲染器失败", err)
	}
	return renderer, nil
}

// Render 渲染 Markdown 文本
func Render(md string, cfg config.CatalogConfig) (string, error) {
	renderer, err := NewRenderer(cfg)
	if err != nil {
		return "", err
	}

	out, err := renderer.Render(md)
	if err != nil {
		return "", errors.WrapRenderError("渲染目录失败", err)
	}
	return out, nil
}
