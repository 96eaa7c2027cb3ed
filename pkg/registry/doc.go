// Package registry 提供不可变的泛型命名注册表
//
// 注册表把公开名称绑定到实现引用，具有以下特性：
// - 名称在注册表内唯一，重复名称在构造时报错
// - 构造完成后只读，不支持注册、更新或移除
// - 保持声明顺序，按分类筛选
// - 并发读取无需加锁
//
// 基本用法：
//
//  1. 定义注册表项：
//     type Widget struct {
//     name     string
//     category string
//     }
//
//     // 实现 Item 接口
//     func (w *Widget) Name() string { return w.name }
//     func (w *Widget) Type() string { return w.category }
//
//  2. 创建注册表：
//     reg, err := registry.New("components", header, footer)
//
//  3. 解析名称：
//     w, err := reg.Resolve("Header")
//     if errors.Is(err, registry.ErrNotFound) {
//     // 名称未注册
//     }
//
//  4. 列出所有名称：
//     for _, name := range reg.Names() {
//     fmt.Println(name)
//     }
//
//  5. 按分类获取项目：
//     forms := reg.GetByType("form")
//
//  6. 进程级注册表：
//     var Components = registry.Once("components", declared)
//     w, err := Components().Resolve("Header")
package registry
