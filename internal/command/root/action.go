package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-config2args/internal/config"
	"github.com/lwmacct/251218-go-config2args/internal/convert"
	"github.com/lwmacct/251218-go-config2args/pkg/cfgm"
)

// ErrUsage 表示缺少输入文件参数，使用说明已输出到 stdout。
var ErrUsage = errors.New("missing config file argument")

const usageLine = "usage: " + config.AppName + " /path/to/config.json"

func action(_ context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer

	path := cmd.Args().First()
	if path == "" {
		_, _ = fmt.Fprintln(out, usageLine)

		return ErrUsage
	}

	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	opts := []cfgm.Option{cfgm.WithEnvPrefix(config.EnvPrefix)}
	if settings := cmd.String("config"); settings != "" {
		opts = append(opts, cfgm.WithConfigPaths(settings), cfgm.WithRequired())
	}
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), config.AppName, opts...)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := setupLogger(cmd.Root().ErrWriter, cfg.Log); err != nil {
		return err
	}

	args, err := convert.New(*cfg).ConvertFile(path)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, args)

	return err
}

func setupLogger(w io.Writer, lc config.LogConfig) error {
	level, err := lc.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))

	return nil
}
