// Package command 提供 config2args 的命令行功能。
package command

import "github.com/lwmacct/251218-go-config2args/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
