package templexp

import (
	"fmt"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 变量来源
// ═══════════════════════════════════════════════════════════════════════════

// Lookup 返回变量值以及该变量是否已设置。
type Lookup func(name string) (string, bool)

// EnvLookup 从进程环境变量读取。
func EnvLookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapLookup 从给定 map 读取，常用于测试或固定变量集。
func MapLookup(vars map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// expander 持有单次展开的状态。
//
// ":=" 赋值只写入 assigned，不会修改变量来源。
type expander struct {
	lookup   Lookup
	assigned map[string]string
}

func (e *expander) get(name string) (string, bool) {
	if v, ok := e.assigned[name]; ok {
		return v, true
	}

	return e.lookup(name)
}

// ═══════════════════════════════════════════════════════════════════════════
// 参数解析
// ═══════════════════════════════════════════════════════════════════════════

// parameter 是 ${...} 内部表达式的解析结果。
type parameter struct {
	name  string
	op    byte // 0 表示无操作符，否则为 '-', '+', '?', '='
	colon bool // 操作符前是否带 ':'，带冒号时空值视同未设置
	word  string
}

func isNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

func isOperator(ch byte) bool {
	return ch == '-' || ch == '+' || ch == '?' || ch == '='
}

func parseParameter(expr string) (parameter, bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return parameter{}, false
	}

	i := 1
	for i < len(expr) && isNameChar(expr[i]) {
		i++
	}

	p := parameter{name: expr[:i]}
	rest := expr[i:]
	if rest == "" {
		return p, true
	}

	if rest[0] == ':' && len(rest) >= 2 && isOperator(rest[1]) {
		p.colon = true
		rest = rest[1:]
	}
	if !isOperator(rest[0]) {
		return parameter{}, false
	}
	p.op = rest[0]
	p.word = rest[1:]

	return p, true
}

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

func requiredError(name, word string) error {
	if word == "" {
		return fmt.Errorf("templexp: %s: parameter null or not set", name)
	}

	return fmt.Errorf("templexp: %s: %s", name, word)
}

// word 展开操作符右侧的文本，允许嵌套 ${...}。
func (e *expander) word(word string) (string, error) {
	if !strings.Contains(word, "${") {
		return word, nil
	}

	return e.expand(word)
}

// expression 计算单个 ${...}，第二个返回值为 false 时原样保留表达式。
func (e *expander) expression(expr string) (string, bool, error) {
	p, ok := parseParameter(expr)
	if !ok {
		return "", false, nil
	}

	val, isSet := e.get(p.name)
	present := isSet && (!p.colon || val != "")

	switch p.op {
	case 0:
		return val, true, nil
	case '-':
		if present {
			return val, true, nil
		}
	case '+':
		if !present {
			return "", true, nil
		}
	case '?':
		if present {
			return val, true, nil
		}
		return "", false, requiredError(p.name, p.word)
	case '=':
		if present {
			return val, true, nil
		}
		w, err := e.word(p.word)
		if err != nil {
			return "", false, err
		}
		e.assigned[p.name] = w
		return w, true, nil
	}

	w, err := e.word(p.word)
	if err != nil {
		return "", false, err
	}

	return w, true, nil
}

func (e *expander) expand(text string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) {
			buf.WriteByte(text[i])
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte('$')
			i++
			continue
		}

		end := findMatchingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte('$')
			i++
			continue
		}

		expanded, ok, err := e.expression(text[i+2 : end])
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(expanded)
		} else {
			buf.WriteString(text[i : end+1])
		}

		i = end + 1
	}

	return buf.String(), nil
}

func findMatchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		if text[i] == '$' && i+1 < len(text) && text[i+1] == '{' {
			depth++
			i++
			continue
		}
		if text[i] == '}' {
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 入口
// ═══════════════════════════════════════════════════════════════════════════

// Expand 使用 lookup 作为变量来源执行 Shell 参数展开。
//
// 支持语法：
//   - ${VAR} - 变量替换
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于当前展开）
//   - $$ - 字面量 $
//
// 仅在必填校验失败时返回 error。
func Expand(text string, lookup Lookup) (string, error) {
	e := &expander{lookup: lookup, assigned: make(map[string]string)}
	return e.expand(text)
}

// ExpandTemplate 以当前进程环境变量执行 [Expand]。
func ExpandTemplate(text string) (string, error) {
	return Expand(text, EnvLookup)
}
