// Package root 提供 config2args 主命令。
package root

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-config2args/internal/command"
	"github.com/lwmacct/251218-go-config2args/internal/config"
	"github.com/lwmacct/251218-go-config2args/pkg/cfgm"
)

// Command 主命令
var Command = NewCommand()

// NewCommand 创建主命令。每次调用返回独立实例，flag 状态互不影响。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      config.AppName,
		Usage:     "将 JSON 配置文件展开为命令行参数",
		ArgsUsage: "<config-file>",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config2args 自身的配置文件 (YAML/JSON)",
			},
			&cli.StringFlag{
				Name:  cfgm.FlagName("template.suffix"),
				Value: command.Defaults.Template.Suffix,
				Usage: "触发模板渲染的文件后缀",
			},
			&cli.BoolFlag{
				Name:  cfgm.FlagName("template.always"),
				Usage: "忽略后缀，总是渲染模板",
			},
			&cli.BoolFlag{
				Name:  cfgm.FlagName("template.disabled"),
				Usage: "禁用模板渲染",
			},
			&cli.StringFlag{
				Name:  cfgm.FlagName("input.format"),
				Value: command.Defaults.Input.Format,
				Usage: "输入格式: auto, json, yaml",
			},
			&cli.BoolFlag{
				Name:    cfgm.FlagName("input.expand-env"),
				Aliases: []string{"e"},
				Usage:   "解析前展开 ${VAR} 环境变量引用",
			},
			&cli.StringFlag{
				Name:  cfgm.FlagName("log.level"),
				Value: command.Defaults.Log.Level,
				Usage: "日志级别: debug, info, warn, error",
			},
		},
	}
}
