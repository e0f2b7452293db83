// Package convert 串联读取、解析、展开与模板渲染，生成最终参数字符串。
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lwmacct/251218-go-config2args/internal/config"
	"github.com/lwmacct/251218-go-config2args/pkg/argv"
	"github.com/lwmacct/251218-go-config2args/pkg/render"
	"github.com/lwmacct/251218-go-config2args/pkg/templexp"
)

var (
	// ErrRead 表示输入文件无法读取。
	ErrRead = errors.New("read config")

	// ErrExpand 表示 ${VAR} 展开失败。
	ErrExpand = errors.New("expand environment")
)

// Converter 将配置文件转换为参数字符串。
type Converter struct {
	cfg      config.Config
	readFile func(name string) ([]byte, error)
	lookup   templexp.Lookup
}

// New 创建 Converter。
func New(cfg config.Config) *Converter {
	return &Converter{
		cfg:      cfg,
		readFile: os.ReadFile,
		lookup:   templexp.EnvLookup,
	}
}

// WithLookup 替换 ${VAR} 展开使用的变量来源，返回自身便于链式调用。
func (c *Converter) WithLookup(lookup templexp.Lookup) *Converter {
	c.lookup = lookup
	return c
}

// ConvertFile 读取 path 并转换。
func (c *Converter) ConvertFile(path string) (string, error) {
	content, err := c.readFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	return c.Convert(path, content)
}

// Convert 转换已读入的文档，name 用于选择格式与判断是否渲染模板。
func (c *Converter) Convert(name string, content []byte) (string, error) {
	if c.cfg.Input.ExpandEnv {
		expanded, err := templexp.Expand(string(content), c.lookup)
		if err != nil {
			return "", fmt.Errorf("%w in %s: %w", ErrExpand, name, err)
		}
		content = []byte(expanded)
	}

	format := c.Format(name)
	slog.Debug("Decoding config", "name", name, "format", format)

	var (
		doc argv.Value
		err error
	)
	if format == config.FormatYAML {
		doc, err = argv.DecodeYAML(content)
	} else {
		doc, err = argv.DecodeJSON(content)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	args, err := argv.Flatten(doc, "")
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	if !c.IsTemplate(name) {
		return args, nil
	}

	slog.Debug("Rendering template", "name", name)
	rendered, err := render.Render(args)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return rendered, nil
}

// IsTemplate 判断 name 对应的结果是否需要模板渲染。
func (c *Converter) IsTemplate(name string) bool {
	t := c.cfg.Template
	switch {
	case t.Disabled:
		return false
	case t.Always:
		return true
	default:
		return t.Suffix != "" && strings.HasSuffix(name, t.Suffix)
	}
}

// Format 返回 name 使用的输入格式。
//
// 配置为 auto 时先去掉模板后缀，再按扩展名判断：.yaml/.yml 为 YAML，其余为 JSON。
func (c *Converter) Format(name string) string {
	format := strings.ToLower(c.cfg.Input.Format)
	if format != config.FormatAuto && format != "" {
		return format
	}

	if suffix := c.cfg.Template.Suffix; suffix != "" {
		name = strings.TrimSuffix(name, suffix)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return config.FormatYAML
	default:
		return config.FormatJSON
	}
}
