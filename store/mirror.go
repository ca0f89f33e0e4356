// Package store 维护每类记录的内存镜像。
// 镜像在启动时从数据库加载一次，之后就是运行期的唯一事实来源：
// 所有增删改都直接作用在镜像上，再整表写回数据库。
package store

// Mirror 一类记录的有序列表。
type Mirror[T any] struct {
	items  []T
	idOf   func(T) int
	baseID int
}

// NewMirror 创建空镜像。baseID 是列表为空时分配的首个编号。
func NewMirror[T any](baseID int, idOf func(T) int) *Mirror[T] {
	return &Mirror[T]{idOf: idOf, baseID: baseID}
}

// Load 用数据库里的全部记录替换镜像内容（仅启动时调用）。
func (m *Mirror[T]) Load(items []T) {
	m.items = items
}

// All 返回底层列表本身而不是拷贝：搜索为空时的过滤结果必须
// 能按下标映射回真实列表，否则编辑/删除会找错记录。
func (m *Mirror[T]) All() []T { return m.items }

func (m *Mirror[T]) Len() int { return len(m.items) }

func (m *Mirror[T]) At(i int) T { return m.items[i] }

// NextID 分配新编号：max(现有 id)+1，空表时用 baseID。
// 删除不回收编号。
func (m *Mirror[T]) NextID() int {
	if len(m.items) == 0 {
		return m.baseID
	}
	max := 0
	for _, it := range m.items {
		if id := m.idOf(it); id > max {
			max = id
		}
	}
	return max + 1
}

// IndexByID 按编号找下标，找不到返回 -1。
func (m *Mirror[T]) IndexByID(id int) int {
	for i, it := range m.items {
		if m.idOf(it) == id {
			return i
		}
	}
	return -1
}

func (m *Mirror[T]) Append(v T) {
	m.items = append(m.items, v)
}

func (m *Mirror[T]) ReplaceAt(i int, v T) {
	m.items[i] = v
}

func (m *Mirror[T]) RemoveAt(i int) {
	m.items = append(m.items[:i], m.items[i+1:]...)
}

// Snapshot 拷贝当前列表，持久化失败时用 Restore 回滚。
func (m *Mirror[T]) Snapshot() []T {
	cp := make([]T, len(m.items))
	copy(cp, m.items)
	return cp
}

func (m *Mirror[T]) Restore(items []T) {
	m.items = items
}
