package pages

// 页面分区
const (
	SectionAuth     = "auth"
	SectionAccount  = "account"
	SectionCommerce = "commerce"
	SectionRecipes  = "recipes"
	SectionInfo     = "info"
)

// Sections 按展示顺序列出所有分区
var Sections = []string{SectionRecipes, SectionAuth, SectionAccount, SectionCommerce, SectionInfo}

// View 是路由页面的能力接口，只有本包声明的页面能满足它
type View interface {
	Name() string
	// Type 返回页面分区
	Type() string
	// Module 返回定义该页面的前端模块路径
	Module() string

	view()
}

type page struct {
	name    string
	section string
	module  string
}

func newView(name, module, section string) View {
	return &page{name: name, section: section, module: module}
}

func (p *page) Name() string   { return p.name }
func (p *page) Type() string   { return p.section }
func (p *page) Module() string { return p.module }
func (p *page) String() string { return p.name }
func (*page) view()            {}
