// Package argv 将层级配置文档展开为 Shell 风格的参数字符串。
//
// 文档先由 [DecodeJSON] 或 [DecodeYAML] 解析为有序的 [Value] 树，
// 再由 [Flatten] 按固定规则生成参数。
//
// # 展开规则
//
//	{"key1": 1, "key2": "udon"}            → --key1 1 --key2 udon
//	{"a": 1, "b": "udon"}                  → -a 1 -b udon
//	{"key3": [1, 2, 3]}                    → --key3 1 2 3
//	{"_skipped_key": 1, "other": 2}        → 1 --other 2
//	{"key3": {"k1": 3, "k3": {"k4": 5}}}   → --key3.k1 3 --key3.k3.k4 5
//	{"verbose": null}                      → --verbose
//
// 不做 Shell 转义，也不校验 flag 是否被目标程序接受。
//
// # 错误
//
// 数组元素必须是数字或字符串，字段值不能是布尔。
// 违反时返回 [*ShapeError]，可用 errors.Is(err, [ErrUnsupportedShape]) 判断。
// 需要 panic 语义时使用 [MustFlatten]。
package argv
