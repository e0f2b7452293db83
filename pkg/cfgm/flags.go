package cfgm

import (
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
)

// FlagName 返回配置 key 对应的 CLI flag 名称，仅替换 "." 为 "-"。
//
//   - template.suffix → template-suffix
//   - input.expand-env → input-expand-env
func FlagName(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
func applyCLIFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	walkConfigFields(typ, prefix, func(fullKey string, fieldType reflect.Type) {
		flag := FlagName(fullKey)
		if !cmd.IsSet(flag) {
			return
		}
		if val, ok := flagValue(cmd, flag, fieldType); ok {
			setByPath(config, fullKey, val)
		}
	})
}

// flagValue 按字段类型读取 CLI 值。
//
// 支持 string、bool、int、int64、float64、time.Duration 与 []string，
// 其他类型忽略。
func flagValue(cmd *cli.Command, flag string, fieldType reflect.Type) (any, bool) {
	if fieldType == durationType {
		return cmd.Duration(flag), true
	}

	switch fieldType.Kind() {
	case reflect.String:
		return cmd.String(flag), true
	case reflect.Bool:
		return cmd.Bool(flag), true
	case reflect.Int:
		return cmd.Int(flag), true
	case reflect.Int64:
		return cmd.Int64(flag), true
	case reflect.Float64:
		return cmd.Float64(flag), true
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			return cmd.StringSlice(flag), true
		}
	default:
	}

	return nil, false
}
