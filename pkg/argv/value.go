package argv

// Kind 标识 [Value] 承载的数据形态。
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member 是对象中的一个键值对。
type Member struct {
	Key   string
	Value Value
}

// Value 是解析后的配置文档节点。
//
// 零值为 null。Value 构造后只读，对象成员保持文档中的顺序。
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	text    string
	items   []Value
	members []Member
}

// Null 返回 null 节点。
func Null() Value { return Value{} }

// Bool 返回布尔节点。
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number 返回数字节点。
func Number(f float64) Value { return Value{kind: KindNumber, number: f} }

// String 返回字符串节点。
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array 返回数组节点。
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Object 返回对象节点，成员顺序即遍历顺序。
func Object(members ...Member) Value { return Value{kind: KindObject, members: members} }

// Field 是构造 [Member] 的简写。
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) Bool() bool { return v.boolean }
func (v Value) Float() float64 { return v.number }
func (v Value) Str() string { return v.text }
func (v Value) Items() []Value { return v.items }
func (v Value) Members() []Member { return v.members }
func (v Value) IsNull() bool { return v.kind == KindNull }
