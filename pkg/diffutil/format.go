package diffutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatSideBySide 左右两栏显示，树里的框线字符按显示宽度对齐
func FormatSideBySide(diff []DiffLine) string {
	cond := runewidth.NewCondition()
	// 模糊宽度字符（框线）按 1 计算
	cond.EastAsianWidth = false

	width := cond.StringWidth("* Before")
	for _, d := range diff {
		width = max(width, cond.StringWidth(d.Left))
	}

	var b strings.Builder
	header := padRight(cond, "* Before", width) + "     * After"
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", cond.StringWidth(header)))
	for _, d := range diff {
		b.WriteString("\n")
		b.WriteString(padRight(cond, d.Left, width))
		b.WriteString("  " + string(d.Mark) + "  ")
		b.WriteString(d.Right)
	}
	return b.String()
}

func padRight(cond *runewidth.Condition, s string, width int) string {
	return s + strings.Repeat(" ", width-cond.StringWidth(s))
}
