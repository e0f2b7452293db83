// Package render 将参数字符串作为一次性 Jinja2 模板渲染。
//
// 模板没有名称，不做缓存，也不绑定任何外部变量；
// 变量只能由模板自身通过 {% set %} 定义。
//
//	--key1 {% set xs = [1, 2, 3, 4] %}{% for i in xs %}{{ i }} {% endfor %}
//
// 渲染结果为 "--key1 1 2 3 4 "。插值默认开启自动转义。
package render

import (
	"errors"
	"fmt"

	"github.com/nikolalohinski/gonja/v2/builtins"
	"github.com/nikolalohinski/gonja/v2/config"
	"github.com/nikolalohinski/gonja/v2/exec"
	"github.com/nikolalohinski/gonja/v2/loaders"
)

// templateName 是一次性模板在内存 loader 中的路径。
const templateName = "/config2args"

// ErrTemplate 表示模板无法解析或执行。
var ErrTemplate = errors.New("template error")

// TemplateError 包装模板引擎返回的底层错误。
type TemplateError struct {
	Stage string // "parse" 或 "execute"
	Err   error
}

func (e *TemplateError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("%s: %s: %v", ErrTemplate.Error(), e.Stage, e.Err)
}

// Unwrap 同时暴露 [ErrTemplate] 与底层错误。
func (e *TemplateError) Unwrap() []error { return []error{ErrTemplate, e.Err} }

// newConfig 返回开启自动转义的独立配置，不修改 gonja 的全局默认值。
func newConfig() *config.Config {
	cfg := config.New()
	cfg.AutoEscape = true

	return cfg
}

func newEnvironment() *exec.Environment {
	return &exec.Environment{
		Context:           exec.EmptyContext().Update(builtins.GlobalFunctions).Update(builtins.GlobalVariables),
		Filters:           builtins.Filters,
		Tests:             builtins.Tests,
		ControlStructures: builtins.ControlStructures,
		Methods:           builtins.Methods,
	}
}

// Render 以空上下文渲染 text。
func Render(text string) (string, error) {
	loader, err := loaders.NewMemoryLoader(map[string]string{templateName: text})
	if err != nil {
		return "", &TemplateError{Stage: "parse", Err: err}
	}

	tpl, err := exec.NewTemplate(templateName, newConfig(), loader, newEnvironment())
	if err != nil {
		return "", &TemplateError{Stage: "parse", Err: err}
	}

	out, err := tpl.ExecuteToString(exec.EmptyContext())
	if err != nil {
		return "", &TemplateError{Stage: "execute", Err: err}
	}

	return out, nil
}
