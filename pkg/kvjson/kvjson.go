// Package kvjson 在 JSON 对象和有序索引之间转换
// 值保存原始 JSON 文本，任意类型都能原样写回
package kvjson

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"ordered_index/pkg/avltree"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var (
	ErrInvalidJSON = errors.New("invalid json")
	ErrNotObject   = errors.New("top level json value is not an object")
)

// Index 键是对象的 key，值是原始 JSON
type Index = avltree.AVLTree[string, string]

// Load 从 reader 读一个 JSON 对象，重复的 key 以后出现的为准
func Load(r io.Reader) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

func LoadBytes(data []byte) (*Index, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, doc.Type)
	}

	idx := avltree.New[string, string]()
	doc.ForEach(func(key, value gjson.Result) bool {
		idx.Insert(key.String(), value.Raw)
		return true
	})
	return idx, nil
}

// Dump 按键升序写成 JSON 对象，indent 为 true 时格式化输出
func Dump(idx *Index, indent bool) ([]byte, error) {
	doc := []byte("{}")
	var err error
	for k, raw := range idx.All() {
		// sjson 不接受空路径；空串是最小的键，一定最先写入
		if k == "" {
			doc = append([]byte(`{"":`), raw...)
			doc = append(doc, '}')
			continue
		}
		doc, err = sjson.SetRawBytes(doc, escapePath(k), []byte(raw))
		if err != nil {
			return nil, fmt.Errorf("写入 key %q 失败: %w", k, err)
		}
	}
	if indent {
		return pretty.Pretty(doc), nil
	}
	return doc, nil
}

// escapePath 把 key 转成 sjson 路径，路径语法里的特殊字符加反斜杠
// 纯数字的 key 加冒号前缀，否则会被当成数组下标
func escapePath(key string) string {
	var b strings.Builder
	if key != "" && isDigits(key) {
		b.WriteByte(':')
	}
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%', '~':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
