package pages

import (
	stderrors "errors"
	"reflect"
	"testing"

	"foodgram-ui/internal/components"
	"foodgram-ui/pkg/registry"
)

func TestRegistryExportsDeclaredNames(t *testing.T) {
	want := []string{
		"Main", "SignIn", "SingleCard", "SignUp", "RecipeEdit", "Cart", "Favorites",
		"Subscriptions", "RecipeCreate", "User", "ChangePassword", "Technologies",
		"ResetPassword", "NotFound", "About", "UpdateAvatar",
	}

	reg := Registry()
	if reg.Len() != 16 {
		t.Fatalf("期望页面数量为16，实际为: %d", reg.Len())
	}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("页面名称与导出列表不一致:\n期望: %v\n实际: %v", want, got)
	}

	for _, name := range want {
		v, err := reg.Resolve(name)
		if err != nil || v == nil {
			t.Errorf("解析 '%s' 失败: %v", name, err)
		}
	}
}

func TestSignInOnlyInPages(t *testing.T) {
	v, err := Resolve("SignIn")
	if err != nil {
		t.Fatalf("解析 SignIn 时发生错误: %v", err)
	}
	if v != SignIn {
		t.Error("期望返回 SignIn 页面")
	}

	if _, err := components.Resolve("SignIn"); !stderrors.Is(err, registry.ErrNotFound) {
		t.Errorf("组件注册表解析 SignIn 应返回 ErrNotFound，实际为: %v", err)
	}
}

func TestMainIsIndependentPerRegistry(t *testing.T) {
	page, err := Resolve("Main")
	if err != nil {
		t.Fatalf("解析页面 Main 失败: %v", err)
	}
	widget, err := components.Resolve("Main")
	if err != nil {
		t.Fatalf("解析组件 Main 失败: %v", err)
	}

	if page.Type() != SectionRecipes {
		t.Errorf("页面 Main 分区应为 %s，实际为 %s", SectionRecipes, page.Type())
	}
	if widget.Type() != components.CategoryLayout {
		t.Errorf("组件 Main 分类应为 %s，实际为 %s", components.CategoryLayout, widget.Type())
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, name := range []string{"signin", "Login", "PasswordReset", ""} {
		if _, err := Resolve(name); !stderrors.Is(err, registry.ErrNotFound) {
			t.Errorf("解析 '%s' 应返回 ErrNotFound，实际为: %v", name, err)
		}
	}
}

func TestResetPasswordModule(t *testing.T) {
	if ResetPassword.Module() != "password-reset" {
		t.Errorf("ResetPassword 模块路径应为 password-reset，实际为 %s", ResetPassword.Module())
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	a, err := Build()
	if err != nil {
		t.Fatalf("构造失败: %v", err)
	}
	b, err := Build()
	if err != nil {
		t.Fatalf("构造失败: %v", err)
	}
	if !reflect.DeepEqual(a.Names(), b.Names()) {
		t.Error("两次构造的名称集合应一致")
	}
}

func TestSectionsCoverAllPages(t *testing.T) {
	total := 0
	for _, section := range Sections {
		total += len(Registry().GetByType(section))
	}
	if total != 16 {
		t.Errorf("分区总数应为16，实际为 %d", total)
	}
}

func TestResolveReturnsDeclaredValue(t *testing.T) {
	for _, v := range All() {
		got, err := Resolve(v.Name())
		if err != nil {
			t.Fatalf("解析 '%s' 失败: %v", v.Name(), err)
		}
		if got != v {
			t.Errorf("'%s' 解析结果应与导出变量为同一引用", v.Name())
		}
	}
}
