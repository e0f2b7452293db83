package argv

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Flatten 将配置文档展开为命令行参数字符串。
//
// 规则：
//   - 对象按文档顺序遍历，嵌套对象的 key 以 "." 拼接，中间层不产生 flag
//   - 单字节 key 生成短 flag (-x)，其余生成长 flag (--name)
//   - 以 "_" 开头的 key 路径不生成 flag，只输出值
//   - 数字、字符串原样输出；null 不输出值；数组元素以空格连接
//
// prefix 为空表示从根开始。结果会去掉末尾空白。
// 数组中嵌套数组/对象、字段值为布尔时返回 [*ShapeError]。
func Flatten(v Value, prefix string) (string, error) {
	var buf strings.Builder
	if err := flattenValue(&buf, v, prefix); err != nil {
		return "", err
	}

	return strings.TrimRightFunc(buf.String(), unicode.IsSpace), nil
}

// MustFlatten 调用 [Flatten] 并在结构错误时 panic。
func MustFlatten(v Value, prefix string) string {
	out, err := Flatten(v, prefix)
	if err != nil {
		panic(fmt.Sprintf("argv: %v", err))
	}

	return out
}

func flattenValue(buf *strings.Builder, v Value, prefix string) error {
	switch v.Kind() {
	case KindObject:
		return flattenObject(buf, v, prefix)
	case KindArray:
		return writeArray(buf, v, prefix)
	case KindNumber:
		writeToken(buf, formatNumber(v.Float()))
	case KindString:
		writeToken(buf, v.Str())
	case KindNull, KindBool:
		// 顶层 null/布尔不产生任何参数
	}

	return nil
}

func flattenObject(buf *strings.Builder, v Value, prefix string) error {
	for _, m := range v.Members() {
		keyName := prefix + m.Key

		if m.Value.Kind() == KindObject {
			nested, err := Flatten(m.Value, keyName+".")
			if err != nil {
				return err
			}
			writeToken(buf, nested)

			continue
		}

		if !strings.HasPrefix(keyName, "_") {
			writeToken(buf, flagName(keyName))
		}

		switch m.Value.Kind() {
		case KindNumber:
			writeToken(buf, formatNumber(m.Value.Float()))
		case KindString:
			writeToken(buf, m.Value.Str())
		case KindNull:
		case KindArray:
			if err := writeArray(buf, m.Value, keyName); err != nil {
				return err
			}
		case KindBool, KindObject:
			return &ShapeError{Path: keyName, Kind: m.Value.Kind()}
		}
	}

	return nil
}

func writeArray(buf *strings.Builder, v Value, path string) error {
	parts := make([]string, 0, len(v.Items()))
	for _, item := range v.Items() {
		switch item.Kind() {
		case KindNumber:
			parts = append(parts, formatNumber(item.Float()))
		case KindString:
			parts = append(parts, item.Str())
		case KindNull, KindBool, KindArray, KindObject:
			return &ShapeError{Path: path, Kind: item.Kind(), Element: true}
		}
	}
	writeToken(buf, strings.Join(parts, " "))

	return nil
}

// flagName 按 key 的字节长度选择短/长 flag。
func flagName(key string) string {
	if len(key) == 1 {
		return "-" + key
	}

	return "--" + key
}

func writeToken(buf *strings.Builder, token string) {
	buf.WriteString(token)
	buf.WriteByte(' ')
}

// formatNumber 输出最短的十进制表示，不使用指数形式。
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
