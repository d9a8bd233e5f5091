package utils

// TailLines 取日志末尾最多 max 行，对局视图只下发最近的记录
func TailLines(lines []string, max int) []string {
	if max <= 0 {
		return nil
	}
	if len(lines) <= max {
		return lines
	}
	return lines[len(lines)-max:]
}
