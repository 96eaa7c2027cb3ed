// Package pages 汇总所有路由页面，供路由层按名称引用
package pages

import "foodgram-ui/pkg/registry"

const Kind = "pages"

// 页面声明，与注册表共享同一引用，只可读取，不应重新赋值
var (
	Main           = newView("Main", "main", SectionRecipes)
	SignIn         = newView("SignIn", "signin", SectionAuth)
	SingleCard     = newView("SingleCard", "single-card", SectionRecipes)
	SignUp         = newView("SignUp", "signup", SectionAuth)
	RecipeEdit     = newView("RecipeEdit", "recipe-edit", SectionRecipes)
	Cart           = newView("Cart", "cart", SectionCommerce)
	Favorites      = newView("Favorites", "favorites", SectionCommerce)
	Subscriptions  = newView("Subscriptions", "subscriptions", SectionAccount)
	RecipeCreate   = newView("RecipeCreate", "recipe-create", SectionRecipes)
	User           = newView("User", "user", SectionAccount)
	ChangePassword = newView("ChangePassword", "change-password", SectionAccount)
	Technologies   = newView("Technologies", "technologies", SectionInfo)
	ResetPassword  = newView("ResetPassword", "password-reset", SectionAuth)
	NotFound       = newView("NotFound", "not-found", SectionInfo)
	About          = newView("About", "about", SectionInfo)
	UpdateAvatar   = newView("UpdateAvatar", "update-avatar", SectionAccount)
)

// All 按导出顺序返回所有页面
func All() []View {
	return []View{
		Main,
		SignIn,
		SingleCard,
		SignUp,
		RecipeEdit,
		Cart,
		Favorites,
		Subscriptions,
		RecipeCreate,
		User,
		ChangePassword,
		Technologies,
		ResetPassword,
		NotFound,
		About,
		UpdateAvatar,
	}
}

func Build() (*registry.BaseRegistry[View], error) {
	return registry.New(Kind, All()...)
}

// Registry 返回进程级页面注册表
var Registry = registry.Once(Kind, All)

func Resolve(name string) (View, error) {
	return Registry().Resolve(name)
}
