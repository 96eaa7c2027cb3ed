package util

import (
	"fmt"
	"sort"
	"sync"

	"foodgram-ui/pkg/registry"
)

// RegistryService 负责管理应用中所有注册表实例，按种类索引
type RegistryService struct {
	mu         sync.RWMutex
	registries map[string]registry.Catalog
}

var (
	globalRegistryService *RegistryService
	once                  sync.Once
)

// NewRegistryService 创建一个新的中央注册服务
func NewRegistryService() *RegistryService {
	return &RegistryService{
		registries: make(map[string]registry.Catalog),
	}
}

// GetRegistryService 获取全局唯一的注册服务实例
func GetRegistryService() *RegistryService {
	once.Do(func() {
		globalRegistryService = NewRegistryService()
	})
	return globalRegistryService
}

// Register 以注册表自身的种类为键登记一个注册表，例如 "components" 或 "pages"
func (s *RegistryService) Register(catalog registry.Catalog) error {
	if catalog == nil {
		return NewError(ErrCodeInvalidParam, "注册表不能为空")
	}

	kind := catalog.Kind()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registries[kind]; exists {
		return NewErrorWithDetail(ErrCodeRegistryDuplicate, "注册表已存在",
			fmt.Sprintf("注册表: %s", kind))
	}

	s.registries[kind] = catalog
	Debugw("注册表已登记", map[string]any{
		"kind":  kind,
		"count": catalog.Len(),
	})
	return nil
}

// Get 根据种类获取一个注册表实例
func (s *RegistryService) Get(kind string) (registry.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog, exists := s.registries[kind]
	if !exists {
		return nil, NewRegistryNotFoundError(kind)
	}
	return catalog, nil
}

// Kinds 返回已登记的注册表种类，按字母排序
func (s *RegistryService) Kinds() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kinds := make([]string, 0, len(s.registries))
	for kind := range s.registries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// All 按种类顺序返回所有注册表
func (s *RegistryService) All() []registry.Catalog {
	kinds := s.Kinds()

	s.mu.RLock()
	defer s.mu.RUnlock()

	catalogs := make([]registry.Catalog, 0, len(kinds))
	for _, kind := range kinds {
		if catalog, ok := s.registries[kind]; ok {
			catalogs = append(catalogs, catalog)
		}
	}
	return catalogs
}
