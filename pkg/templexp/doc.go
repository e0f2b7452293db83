// Package templexp 提供配置字符串的 Shell 参数展开。
//
// 该包仅处理 ${...} 语法，用于在解析 YAML/JSON 之前做轻量替换。
// 不执行命令、不引入模板引擎；Jinja2 模板渲染由 render 包负责。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套展开与 "$$" 字面量
//  3. ":=" 赋值仅作用于当前展开过程
//  4. 无法识别的表达式保持原样
//
// # 快速开始
//
// 展开环境变量引用：
//
//	expanded, err := templexp.ExpandTemplate(`{"model": "${LLM_MODEL:-gpt-4}"}`)
//
// 使用自定义变量来源：
//
//	lookup := templexp.MapLookup(map[string]string{"HOST": "db"})
//	expanded, err := templexp.Expand(`--host ${HOST}`, lookup)
//
// 详见 [Expand] 文档。
package templexp
