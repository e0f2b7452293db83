package argv_test

import (
	"fmt"

	"github.com/lwmacct/251218-go-config2args/pkg/argv"
)

// Example_flatten 演示将 JSON 配置展开为参数字符串。
func Example_flatten() {
	v, err := argv.DecodeJSON([]byte(`{"_input": "in.mp4", "c": "copy", "output": {"format": "mkv"}, "map": [0, 1]}`))
	if err != nil {
		fmt.Println("解析失败:", err)

		return
	}

	args, err := argv.Flatten(v, "")
	if err != nil {
		fmt.Println("展开失败:", err)

		return
	}
	fmt.Println(args)

	// Output:
	// in.mp4 -c copy --output.format mkv --map 0 1
}

// Example_build 演示直接构造节点树。
func Example_build() {
	v := argv.Object(
		argv.Field("v", argv.Null()),
		argv.Field("jobs", argv.Number(4)),
		argv.Field("_target", argv.String("all")),
	)
	fmt.Println(argv.MustFlatten(v, ""))

	// Output:
	// -v --jobs 4 all
}
