package components

import (
	stderrors "errors"
	"reflect"
	"testing"

	"foodgram-ui/pkg/registry"
)

var exportedNames = []string{
	"Header", "Footer", "LinkComponent", "Container", "Main", "Card", "CardList",
	"Icons", "Button", "Title", "Form", "ProtectedRoute", "Input", "AccountMenu",
	"Nav", "Tag", "TagsContainer", "Textarea", "Checkbox", "CheckboxGroup",
	"Pagination", "Purchase", "PurchaseList", "Subscription", "SubscriptionList",
	"FileInput", "IngredientsSearch", "AccountMenuMobile", "Popup", "NavMenu",
	"Orders", "Account", "AccountMobile", "FormTitle",
}

func TestRegistryExportsDeclaredNames(t *testing.T) {
	reg := Registry()

	if reg.Len() != 34 {
		t.Fatalf("期望组件数量为34，实际为: %d", reg.Len())
	}
	if got := reg.Names(); !reflect.DeepEqual(got, exportedNames) {
		t.Errorf("组件名称与导出列表不一致:\n期望: %v\n实际: %v", exportedNames, got)
	}

	for _, name := range exportedNames {
		w, err := reg.Resolve(name)
		if err != nil {
			t.Errorf("解析 '%s' 时发生错误: %v", name, err)
			continue
		}
		if w == nil {
			t.Errorf("'%s' 解析结果不应为空", name)
			continue
		}
		if w.Name() != name {
			t.Errorf("期望名称为 '%s'，实际为 '%s'", name, w.Name())
		}
		if w.Module() == "" {
			t.Errorf("'%s' 缺少模块路径", name)
		}
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range All() {
		if seen[w.Name()] {
			t.Errorf("名称重复: %s", w.Name())
		}
		seen[w.Name()] = true
	}
	if len(seen) != len(All()) {
		t.Errorf("名称集合大小 %d 与声明数量 %d 不一致", len(seen), len(All()))
	}
}

func TestResolveHeader(t *testing.T) {
	w, err := Resolve("Header")
	if err != nil {
		t.Fatalf("解析 Header 时发生错误: %v", err)
	}
	if w != Header {
		t.Error("期望返回 Header 组件")
	}

	if _, err := Resolve("header"); !stderrors.Is(err, registry.ErrNotFound) {
		t.Errorf("错误大小写应返回 ErrNotFound，实际为: %v", err)
	}
}

func TestResolveIsStable(t *testing.T) {
	first, _ := Resolve("Pagination")
	second, _ := Resolve("Pagination")
	if first != second {
		t.Error("重复解析应返回同一引用")
	}
	if Registry() != Registry() {
		t.Error("进程级注册表应只构造一次")
	}
}

func TestPageNamesAreNotComponents(t *testing.T) {
	for _, name := range []string{"SignIn", "Cart", "Favorites", "NotFound"} {
		if _, err := Resolve(name); !stderrors.Is(err, registry.ErrNotFound) {
			t.Errorf("页面名称 '%s' 不应在组件注册表中解析成功", name)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	a, err := Build()
	if err != nil {
		t.Fatalf("第一次构造失败: %v", err)
	}
	b, err := Build()
	if err != nil {
		t.Fatalf("第二次构造失败: %v", err)
	}

	if !reflect.DeepEqual(a.Names(), b.Names()) {
		t.Error("两次构造的名称集合应一致")
	}

	wa, _ := a.Resolve("Card")
	wb, _ := b.Resolve("Card")
	if wa != wb {
		t.Error("两次构造应别名同一组件引用")
	}
}

func TestCategoriesPartitionComponents(t *testing.T) {
	reg := Registry()
	total := 0
	for _, category := range Categories {
		widgets := reg.GetByType(category)
		if len(widgets) == 0 {
			t.Errorf("分类 '%s' 没有组件", category)
		}
		total += len(widgets)
	}
	if total != reg.Len() {
		t.Errorf("分类总数 %d 与组件数量 %d 不一致", total, reg.Len())
	}

	forms := reg.GetByType(CategoryForm)
	if forms[0] != Button {
		t.Errorf("表单分类应按声明顺序以 Button 开头，实际为 %s", forms[0].Name())
	}
}

func TestResolveReturnsDeclaredValue(t *testing.T) {
	for _, w := range All() {
		got, err := Resolve(w.Name())
		if err != nil {
			t.Fatalf("解析 '%s' 失败: %v", w.Name(), err)
		}
		if got != w {
			t.Errorf("'%s' 解析结果应与导出变量为同一引用", w.Name())
		}
	}
}
