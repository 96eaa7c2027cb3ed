package components

// 组件分类
const (
	CategoryLayout     = "layout"     // 页面骨架与标题
	CategoryNavigation = "navigation" // 链接、导航与分页
	CategoryForm       = "form"       // 表单控件
	CategoryContent    = "content"    // 卡片、标签与列表
	CategoryAccount    = "account"    // 账户菜单
	CategoryOverlay    = "overlay"    // 弹窗
	CategoryRouting    = "routing"    // 路由包装
)

// Categories 按展示顺序列出所有分类
var Categories = []string{
	CategoryLayout,
	CategoryNavigation,
	CategoryForm,
	CategoryContent,
	CategoryAccount,
	CategoryOverlay,
	CategoryRouting,
}

// Widget 是可复用界面组件的能力接口，只有本包声明的组件能满足它
type Widget interface {
	// Name 返回组件的公开名称
	Name() string
	// Type 返回组件分类
	Type() string
	// Module 返回定义该组件的前端模块路径
	Module() string

	widget()
}

type component struct {
	name     string
	category string
	module   string
}

func newWidget(name, module, category string) Widget {
	return &component{name: name, category: category, module: module}
}

func (c *component) Name() string   { return c.name }
func (c *component) Type() string   { return c.category }
func (c *component) Module() string { return c.module }
func (c *component) String() string { return c.name }
func (*component) widget()          {}
