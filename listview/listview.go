// Package listview 实现列表页通用的搜索、排序、分页逻辑，
// 四类记录共用同一套规则。
package listview

import (
	"sort"
	"strconv"
	"strings"
)

// PageSize 每页条数，四个页面统一固定 10。
const PageSize = 10

// Page 分页结果。Items 是过滤结果的一个切片视图。
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// Filter 按搜索词过滤。搜索词为空直接返回原列表（不是拷贝），
// 后续按下标的编辑/删除要能映射回镜像本身。
func Filter[T any](items []T, search string, match func(T, string) bool) []T {
	if search == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it, search) {
			out = append(out, it)
		}
	}
	return out
}

// Key 列排序键。布尔转成字符串参与比较；能解析成数字的字符串
// 按数值比较；其余按小写字符串比较。数字排在字符串前面。
type Key struct {
	num   float64
	str   string
	isNum bool
}

func KeyOf(v any) Key {
	switch x := v.(type) {
	case bool:
		return Key{str: strconv.FormatBool(x)}
	case int:
		return Key{num: float64(x), isNum: true}
	case float64:
		return Key{num: x, isNum: true}
	case string:
		if isNumericString(x) {
			if f, err := strconv.ParseFloat(x, 64); err == nil {
				return Key{num: f, isNum: true}
			}
		}
		return Key{str: strings.ToLower(x)}
	default:
		return Key{}
	}
}

// isNumericString 最多一个小数点、其余全为数字。
func isNumericString(s string) bool {
	t := strings.Replace(s, ".", "", 1)
	if t == "" {
		return false
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (k Key) Less(o Key) bool {
	if k.isNum != o.isNum {
		return k.isNum
	}
	if k.isNum {
		return k.num < o.num
	}
	return k.str < o.str
}

// SortSlice 按键函数就地稳定排序。镜像本身被重排，
// 下一次整表保存时会把新顺序写进数据库。
func SortSlice[T any](items []T, key func(T) Key, reverse bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if reverse {
			return key(items[j]).Less(key(items[i]))
		}
		return key(items[i]).Less(key(items[j]))
	})
}

// TotalPages 至少为 1。
func TotalPages(total int) int {
	tp := (total + PageSize - 1) / PageSize
	if tp < 1 {
		tp = 1
	}
	return tp
}

// Paginate 取第 requested 页。超出末页时回退到末页，
// 请求任何更大的页码得到的内容与末页相同。
func Paginate[T any](filtered []T, requested int) Page[T] {
	total := len(filtered)
	tp := TotalPages(total)
	p := requested
	if p > tp {
		p = tp
	}
	if p < 1 {
		p = 1
	}
	start := (p - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	return Page[T]{Items: filtered[start:end], Page: p, TotalPages: tp, Total: total}
}

// State 单个列表页的界面状态。Reverse 是整页共享的排序方向标志：
// 每次点表头都取反，点到另一列也不会重置（沿用原有行为）。
type State struct {
	Search  string
	Page    int
	Reverse bool
}

func NewState() *State { return &State{Page: 1} }

// SetSearch 设置搜索词并回到第一页。
func (s *State) SetSearch(q string) {
	s.Search = strings.TrimSpace(q)
	s.Page = 1
}

// ToggleReverse 无条件翻转排序方向并返回新值。
func (s *State) ToggleReverse() bool {
	s.Reverse = !s.Reverse
	return s.Reverse
}

// Prev 第一页之前不动作。
func (s *State) Prev() {
	if s.Page > 1 {
		s.Page--
	}
}

// Next 末页之后不动作。
func (s *State) Next(total int) {
	if s.Page < TotalPages(total) {
		s.Page++
	}
}
