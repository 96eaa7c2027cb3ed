package registry

import "sync"

// MustNew 与 New 相同，构造失败时 panic。
// 用于进程启动阶段，声明列表有误属于编程错误。
func MustNew[T Item](kind string, items ...T) *BaseRegistry[T] {
	r, err := New(kind, items...)
	if err != nil {
		panic(err)
	}
	return r
}

// Once 返回一个访问函数，首次调用时构造注册表，之后始终返回同一实例。
// 并发的首次调用只会构造一次。
func Once[T Item](kind string, items func() []T) func() Registry[T] {
	return sync.OnceValue(func() Registry[T] {
		return MustNew(kind, items()...)
	})
}
