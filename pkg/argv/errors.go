package argv

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedShape 表示配置中出现了无法展开为参数的结构，
	// 例如数组中嵌套数组或对象，或者字段值为布尔。
	ErrUnsupportedShape = errors.New("unsupported item type in this container")

	// ErrDecode 表示输入文档无法解析。
	ErrDecode = errors.New("decode config")
)

// ShapeError 描述一次结构错误的位置。
type ShapeError struct {
	Path    string // 出错字段的 key 路径，顶层数组为空
	Kind    Kind   // 出错节点的实际形态
	Element bool   // 是否出现在数组元素位置
}

func (e *ShapeError) Error() string {
	if e == nil {
		return ""
	}

	where := "field"
	if e.Element {
		where = "array element"
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %s %s", ErrUnsupportedShape.Error(), e.Kind, where)
	}

	return fmt.Sprintf("%s: %s %s at %q", ErrUnsupportedShape.Error(), e.Kind, where, e.Path)
}

func (e *ShapeError) Unwrap() error { return ErrUnsupportedShape }
