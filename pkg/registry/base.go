package registry

import (
	"fmt"
	"reflect"

	"foodgram-ui/internal/pkg/errors"
)

var (
	// ErrDuplicateName 构造时两个项目使用了同一名称
	ErrDuplicateName = &errors.AppError{Code: errors.ErrCodeDuplicateName, Message: "名称重复"}
	// ErrNotFound 请求的名称不在注册表中
	ErrNotFound = &errors.AppError{Code: errors.ErrCodeNotFound, Message: "名称未注册"}
)

// BaseRegistry 是注册表的基础实现。
// 所有项目在构造时一次性写入，之后只读，并发读取无需加锁。
type BaseRegistry[T Item] struct {
	kind  string
	items map[string]T
	order []string
}

// New 用给定项目构造注册表。
// 名称为空或项目为nil时返回 INVALID_PARAM 错误，名称重复时返回 ErrDuplicateName。
func New[T Item](kind string, items ...T) (*BaseRegistry[T], error) {
	if kind == "" {
		return nil, errors.NewError(errors.ErrCodeInvalidParam, "注册表种类不能为空")
	}

	r := &BaseRegistry[T]{
		kind:  kind,
		items: make(map[string]T, len(items)),
		order: make([]string, 0, len(items)),
	}

	for i, item := range items {
		if isNil(item) {
			return nil, errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "注册表项不能为空",
				fmt.Sprintf("注册表: %s, 位置: %d", kind, i))
		}

		name := item.Name()
		if name == "" {
			return nil, errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "注册表项名称不能为空",
				fmt.Sprintf("注册表: %s, 位置: %d", kind, i))
		}

		if _, exists := r.items[name]; exists {
			return nil, errors.NewErrorWithDetails(errors.ErrCodeDuplicateName, "名称重复",
				fmt.Sprintf("注册表: %s, 名称: %s", kind, name))
		}

		r.items[name] = item
		r.order = append(r.order, name)
	}

	return r, nil
}

// Kind 返回注册表种类
func (r *BaseRegistry[T]) Kind() string {
	return r.kind
}

// Resolve 根据名称获取项目，名称区分大小写
func (r *BaseRegistry[T]) Resolve(name string) (T, error) {
	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.NewErrorWithDetails(errors.ErrCodeNotFound, "名称未注册",
			fmt.Sprintf("注册表: %s, 名称: %s", r.kind, name))
	}
	return item, nil
}

// Lookup 与 Resolve 相同，但返回非泛型的 Item
func (r *BaseRegistry[T]) Lookup(name string) (Item, error) {
	item, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Get 根据名称获取项目
func (r *BaseRegistry[T]) Get(name string) (T, bool) {
	item, exists := r.items[name]
	return item, exists
}

// Contains 检查注册表中是否存在指定名称的项目
func (r *BaseRegistry[T]) Contains(name string) bool {
	_, exists := r.items[name]
	return exists
}

// Names 按声明顺序返回所有名称的副本
func (r *BaseRegistry[T]) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// List 按声明顺序列出所有项目
func (r *BaseRegistry[T]) List() []T {
	items := make([]T, 0, len(r.order))
	for _, name := range r.order {
		items = append(items, r.items[name])
	}
	return items
}

// GetByType 根据分类获取所有项目，保持声明顺序
func (r *BaseRegistry[T]) GetByType(itemType string) []T {
	var items []T
	for _, name := range r.order {
		if item := r.items[name]; item.Type() == itemType {
			items = append(items, item)
		}
	}
	return items
}

// Len 返回项目数量
func (r *BaseRegistry[T]) Len() int {
	return len(r.order)
}

// isNil 同时识别 nil 接口和包在接口里的 nil 指针
func isNil(item any) bool {
	if item == nil {
		return true
	}
	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
