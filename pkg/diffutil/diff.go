package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Mark 标记一行的变化
type Mark string

const (
	Same    Mark = "|"
	Added   Mark = "+"
	Removed Mark = "-"
	Changed Mark = "~"
)

type DiffLine struct {
	Left  string
	Right string
	Mark  Mark
}

// CompareMultiline 按行比较两段文本，用来对比一次修改前后的树
// 紧挨着的删除+插入块按行配对成 Changed
func CompareMultiline(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete && i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
			result = append(result, pairLines(splitLines(d.Text), splitLines(diffs[i+1].Text))...)
			i++
			continue
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: Same})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: Removed})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: Added})
			}
		}
	}
	return result
}

func pairLines(del, ins []string) []DiffLine {
	n := max(len(del), len(ins))
	out := make([]DiffLine, 0, n)
	for i := range n {
		var l, r string
		if i < len(del) {
			l = del[i]
		}
		if i < len(ins) {
			r = ins[i]
		}
		out = append(out, DiffLine{Left: l, Right: r, Mark: Changed})
	}
	return out
}

// splitLines 去掉空行
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Changes 统计非 Same 的行数
func Changes(diff []DiffLine) int {
	n := 0
	for _, d := range diff {
		if d.Mark != Same {
			n++
		}
	}
	return n
}
