package cfgm

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-config2args/pkg/templexp"
)

// ErrNoConfigFile 表示启用 [WithRequired] 时没有找到任何配置文件。
var ErrNoConfigFile = errors.New("no config file found")

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 提供 appName 时只搜索应用专属路径，避免误读其他工具的 config.yaml。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//
// 未提供 appName 时返回 config.yaml 与 config/config.yaml。
func DefaultPaths(appName ...string) []string {
	if len(appName) == 0 || appName[0] == "" {
		return []string{"config.yaml", "config/config.yaml"}
	}

	name := appName[0]
	paths := []string{"." + name + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+name+".yaml"))
	}

	return append(paths, "/etc/"+name+"/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	paths := o.configPaths
	if len(paths) == 0 {
		paths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)

	// 2️⃣ 配置文件 (按顺序搜索，找到第一个即停止)
	loaded, err := loadFirstFile(configMap, o.resolvePaths(paths), !o.noTemplateExpansion)
	if err != nil {
		return nil, err
	}
	if !loaded {
		if o.required {
			return nil, fmt.Errorf("%w: %s", ErrNoConfigFile, strings.Join(paths, ", "))
		}
		slog.Debug("No config file found, using defaults")
	}

	// 3️⃣ 环境变量
	if o.envPrefix != "" {
		bindings := generateEnvBindings(o.envPrefix, collectConfigKeys(defaultConfig))
		slog.Debug("Generated auto env bindings", "prefix", o.envPrefix, "count", len(bindings))
		for envKey, configPath := range bindings {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	// 4️⃣ CLI flags (最高优先级，仅当用户明确指定时)
	if o.cmd != nil {
		applyCLIFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，适用于 CLI 场景。
//
// 它会注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}

	return Load(defaultConfig, append(baseOpts, opts...)...)
}

func (o *options) resolvePaths(paths []string) []string {
	if o.baseDir == "" {
		return paths
	}

	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(o.baseDir, p)
	}

	return out
}

// loadFirstFile 合并第一个存在的配置文件。
//
// 文件不存在时尝试下一个路径；存在但无法读取或解析时返回错误。
func loadFirstFile(configMap map[string]any, paths []string, expand bool) (bool, error) {
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("read config file %s: %w", path, err)
		}

		if expand {
			expanded, expandErr := templexp.ExpandTemplate(string(content))
			if expandErr != nil {
				return false, fmt.Errorf("expand template in %s: %w", path, expandErr)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return false, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)

		slog.Debug("Loaded config from file", "path", path, "templateExpansion", expand)

		return true, nil
	}

	return false, nil
}

// collectConfigKeys 递归收集配置结构体的叶子 key（如 input.expand-env）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	walkConfigFields(reflect.TypeOf(defaultConfig), "", func(fullKey string, _ reflect.Type) {
		keys = append(keys, fullKey)
	})

	return keys
}

// walkConfigFields 按 json tag 遍历结构体叶子字段。
func walkConfigFields(typ reflect.Type, prefix string, visit func(fullKey string, fieldType reflect.Type)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkConfigFields(field.Type, fullKey, visit)

			continue
		}

		visit(fullKey, field.Type)
	}
}

// generateEnvBindings 根据配置 key 生成环境变量映射。
//
// 示例 (前缀 "CONFIG2ARGS_")：
//   - template.suffix → CONFIG2ARGS_TEMPLATE_SUFFIX
//   - input.expand-env → CONFIG2ARGS_INPUT_EXPAND_ENV
func generateEnvBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}
