// Package components 汇总所有可复用界面组件，对外提供唯一的按名称访问入口
package components

import "foodgram-ui/pkg/registry"

// Kind 组件注册表的种类
const Kind = "components"

// 组件声明。注册表在首次访问时按这些变量构造并保存同一引用，
// 之后 Resolve 返回的值与变量恒等。变量只可读取：构造后重新赋值不会进入注册表，
// 构造前赋值为 nil 会导致首次访问 panic。
var (
	Header            = newWidget("Header", "header", CategoryLayout)
	Footer            = newWidget("Footer", "footer", CategoryLayout)
	LinkComponent     = newWidget("LinkComponent", "link", CategoryNavigation)
	Container         = newWidget("Container", "container", CategoryLayout)
	Main              = newWidget("Main", "main", CategoryLayout)
	Card              = newWidget("Card", "card", CategoryContent)
	CardList          = newWidget("CardList", "card-list", CategoryContent)
	Icons             = newWidget("Icons", "icons", CategoryLayout)
	Button            = newWidget("Button", "button", CategoryForm)
	Title             = newWidget("Title", "title", CategoryLayout)
	Form              = newWidget("Form", "form", CategoryForm)
	ProtectedRoute    = newWidget("ProtectedRoute", "protected-route", CategoryRouting)
	Input             = newWidget("Input", "input", CategoryForm)
	AccountMenu       = newWidget("AccountMenu", "account-menu", CategoryAccount)
	Nav               = newWidget("Nav", "nav", CategoryNavigation)
	Tag               = newWidget("Tag", "tag", CategoryContent)
	TagsContainer     = newWidget("TagsContainer", "tags-container", CategoryContent)
	Textarea          = newWidget("Textarea", "textarea", CategoryForm)
	Checkbox          = newWidget("Checkbox", "checkbox", CategoryForm)
	CheckboxGroup     = newWidget("CheckboxGroup", "checkbox-group", CategoryForm)
	Pagination        = newWidget("Pagination", "pagination", CategoryNavigation)
	Purchase          = newWidget("Purchase", "purchase", CategoryContent)
	PurchaseList      = newWidget("PurchaseList", "purchase-list", CategoryContent)
	Subscription      = newWidget("Subscription", "subscription", CategoryContent)
	SubscriptionList  = newWidget("SubscriptionList", "subscription-list", CategoryContent)
	FileInput         = newWidget("FileInput", "file-input", CategoryForm)
	IngredientsSearch = newWidget("IngredientsSearch", "ingredients-search", CategoryForm)
	AccountMenuMobile = newWidget("AccountMenuMobile", "account-menu-mobile", CategoryAccount)
	Popup             = newWidget("Popup", "popup", CategoryOverlay)
	NavMenu           = newWidget("NavMenu", "nav-menu", CategoryNavigation)
	Orders            = newWidget("Orders", "orders", CategoryContent)
	Account           = newWidget("Account", "account", CategoryAccount)
	AccountMobile     = newWidget("AccountMobile", "account-mobile", CategoryAccount)
	FormTitle         = newWidget("FormTitle", "form-title", CategoryLayout)
)

// All 按导出顺序返回所有组件
func All() []Widget {
	return []Widget{
		Header,
		Footer,
		LinkComponent,
		Container,
		Main,
		Card,
		CardList,
		Icons,
		Button,
		Title,
		Form,
		ProtectedRoute,
		Input,
		AccountMenu,
		Nav,
		Tag,
		TagsContainer,
		Textarea,
		Checkbox,
		CheckboxGroup,
		Pagination,
		Purchase,
		PurchaseList,
		Subscription,
		SubscriptionList,
		FileInput,
		IngredientsSearch,
		AccountMenuMobile,
		Popup,
		NavMenu,
		Orders,
		Account,
		AccountMobile,
		FormTitle,
	}
}

// Build 用声明的组件构造一个新的注册表
func Build() (*registry.BaseRegistry[Widget], error) {
	return registry.New(Kind, All()...)
}

// Registry 返回进程级组件注册表，首次访问时构造
var Registry = registry.Once(Kind, All)

// Resolve 在进程级注册表中按名称查找组件
func Resolve(name string) (Widget, error) {
	return Registry().Resolve(name)
}
