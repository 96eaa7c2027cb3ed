package registry

// Item 定义注册表项的基本接口
type Item interface {
	// Name 返回注册表项的公开名称，在注册表内唯一
	Name() string
	// Type 返回注册表项的分类
	Type() string
}

// Catalog 是注册表的非泛型只读视图，供按名称访问注册表的使用方使用
type Catalog interface {
	// Kind 返回注册表的种类，例如 "components"
	Kind() string
	// Names 按声明顺序返回所有名称
	Names() []string
	// Lookup 根据名称获取项目，未注册时返回 ErrNotFound
	Lookup(name string) (Item, error)
	// Len 返回项目数量
	Len() int
}

// Registry 定义泛型只读注册表接口，构造完成后不可修改
type Registry[T Item] interface {
	Catalog

	// Resolve 根据名称获取项目，未注册时返回 ErrNotFound
	Resolve(name string) (T, error)
	// Get 根据名称获取项目
	Get(name string) (T, bool)
	// Contains 检查注册表中是否存在指定名称的项目
	Contains(name string) bool
	// List 按声明顺序列出所有项目
	List() []T
	// GetByType 根据分类获取所有项目
	GetByType(itemType string) []T
}
