// Package config 提供 config2args 自身的配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 或 .config2args.yaml 等默认路径
//  3. 环境变量 - CONFIG2ARGS_ 前缀
//  4. CLI flags - 仅用户显式设置的 flag
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// AppName 用于生成默认配置路径与使用说明。
const AppName = "config2args"

// EnvPrefix 为环境变量绑定前缀。
const EnvPrefix = "CONFIG2ARGS_"

// 输入格式。
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config 应用配置。
type Config struct {
	Template TemplateConfig `json:"template" desc:"模板渲染配置"`
	Input    InputConfig    `json:"input" desc:"输入解析配置"`
	Log      LogConfig      `json:"log" desc:"日志配置"`
}

// TemplateConfig 控制何时对参数字符串做 Jinja2 渲染。
type TemplateConfig struct {
	Suffix   string `json:"suffix" desc:"触发模板渲染的文件后缀"`
	Always   bool   `json:"always" desc:"忽略后缀，总是渲染"`
	Disabled bool   `json:"disabled" desc:"禁用模板渲染"`
}

// InputConfig 输入文档配置。
type InputConfig struct {
	Format    string `json:"format" desc:"输入格式: auto, json, yaml"`
	ExpandEnv bool   `json:"expand-env" desc:"解析前展开 ${VAR} 环境变量引用"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别: debug, info, warn, error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Template: TemplateConfig{
			Suffix: ".tera",
		},
		Input: InputConfig{
			Format: FormatAuto,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate 检查配置取值。
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Input.Format) {
	case FormatAuto, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("input.format: unknown format %q", c.Input.Format))
	}

	if c.Template.Always && c.Template.Disabled {
		errs = append(errs, errors.New("template.always and template.disabled are mutually exclusive"))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// SlogLevel 解析日志级别。
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}
