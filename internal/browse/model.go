// Package browse 提供注册表的交互式终端浏览界面
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"foodgram-ui/internal/catalog"
	"foodgram-ui/internal/config"
	"foodgram-ui/internal/util"
	"foodgram-ui/pkg/registry"
)

// entryItem 是列表中的一行
type entryItem struct {
	entry catalog.Entry
}

func (i entryItem) Title() string { return i.entry.Name }

func (i entryItem) Description() string {
	if i.entry.Module == "" {
		return i.entry.Type
	}
	return fmt.Sprintf("%s · %s", i.entry.Type, i.entry.Module)
}

func (i entryItem) FilterValue() string { return i.entry.Name }

// Model 浏览界面模型，Tab 在注册表之间切换
type Model struct {
	catalogs []registry.Catalog
	active   int
	list     list.Model

	width    int
	height   int
	quitting bool

	// 样式
	tabStyle       lipgloss.Style
	activeTabStyle lipgloss.Style
	detailStyle    lipgloss.Style
	helpStyle      lipgloss.Style
}

// NewModel 创建浏览模型，catalogs 的顺序即标签顺序
func NewModel(catalogs []registry.Catalog) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	l.SetShowHelp(false)

	m := &Model{
		catalogs: catalogs,
		list:     l,
		tabStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1),
		activeTabStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		detailStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginLeft(1),
	}

	m.load()
	return m
}

// Active 返回当前注册表的种类
func (m *Model) Active() string {
	if len(m.catalogs) == 0 {
		return ""
	}
	return m.catalogs[m.active].Kind()
}

// Selected 返回当前选中的条目
func (m *Model) Selected() (catalog.Entry, bool) {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return catalog.Entry{}, false
	}
	return item.entry, true
}

// load 将当前注册表装入列表
func (m *Model) load() {
	if len(m.catalogs) == 0 {
		m.list.Title = "无可用注册表"
		return
	}

	c := m.catalogs[m.active]
	entries := catalog.Entries(c)
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{entry: e})
	}

	m.list.ResetFilter()
	m.list.SetItems(items)
	m.list.Select(0)
	m.list.Title = fmt.Sprintf("%s (%d)", c.Kind(), c.Len())
}

// switchTo 按偏移切换注册表，首尾循环
func (m *Model) switchTo(delta int) {
	n := len(m.catalogs)
	if n == 0 {
		return
	}
	m.active = ((m.active+delta)%n + n) % n
	m.load()

	util.Debugw("切换注册表", map[string]any{"kind": m.Active()})
}

// Init 初始化模型
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update 处理消息更新
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// 标签栏、详情框和帮助行
		tabsHeight := 2
		detailHeight := 4
		helpHeight := 1
		m.list.SetSize(msg.Width, max(msg.Height-tabsHeight-detailHeight-helpHeight, 3))
		return m, nil

	case tea.KeyMsg:
		// 过滤输入时按键交给列表处理
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.switchTo(1)
			return m, nil
		case "shift+tab":
			m.switchTo(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View 渲染界面
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var tabs []string
	for i, c := range m.catalogs {
		label := fmt.Sprintf("%s (%d)", c.Kind(), c.Len())
		if i == m.active {
			tabs = append(tabs, m.activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, m.tabStyle.Render(label))
		}
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.list.View(),
	}

	if e, ok := m.Selected(); ok {
		detail := fmt.Sprintf("名称: %s\n类型: %s\n模块: %s", e.Name, e.Type, e.Module)
		sections = append(sections, m.detailStyle.Render(detail))
	}

	sections = append(sections, m.helpStyle.Render("Tab/Shift+Tab: 切换注册表 | /: 过滤 | ↑/↓: 选择 | q: 退出"))

	return strings.Join(sections, "\n")
}

// Run 启动浏览界面
func Run(catalogs []registry.Catalog, cfg config.BrowseConfig) error {
	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(catalogs), opts...)
	if _, err := p.Run(); err != nil {
		return util.WrapError(util.ErrCodeUIFailed, "浏览界面运行失败", err)
	}
	return nil
}
