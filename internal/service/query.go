package service

import "strings"

// StatusAll 状态过滤的“全部”哨兵值
const StatusAll = "all"

// Searchable 可被查询引擎检索的记录
// FieldValue 对未知字段返回空串
type Searchable interface {
	FieldValue(field string) string
	StatusValue() string
}

// ListQuery 列表查询条件，检索与状态过滤取交集
type ListQuery struct {
	Q      string
	Status string
	Fields []string // 为空时使用实体默认检索字段
}

// Search 不区分大小写的子串匹配，任一字段命中即保留
// 空查询原样返回，结果保持输入顺序
func Search[T Searchable](items []T, query string, fields []string) []T {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(item.FieldValue(f)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FilterByStatus 状态等值过滤，空值或 all 不过滤
func FilterByStatus[T Searchable](items []T, status string) []T {
	if status == "" || status == StatusAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.StatusValue() == status {
			out = append(out, item)
		}
	}
	return out
}

// Query 组合检索与状态过滤
func Query[T Searchable](items []T, q ListQuery, defaultFields []string) []T {
	fields := q.Fields
	if len(fields) == 0 {
		fields = defaultFields
	}
	return FilterByStatus(Search(items, q.Q, fields), q.Status)
}
