package controllers

// ValidationError 表单校验失败。Key 是 i18n 提示键，
// 展示层翻译成当前语言的消息；镜像和数据库都未被改动。
type ValidationError struct{ Key string }

func (e *ValidationError) Error() string { return e.Key }

func invalid(key string) error { return &ValidationError{Key: key} }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isAmount 整数或带一个小数点的数字（罚款金额的录入规则）。
func isAmount(s string) bool {
	dots := 0
	for _, r := range s {
		if r == '.' {
			dots++
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return dots <= 1 && len(s) > dots
}
