package templexp_test

import (
	"fmt"
	"os"

	"github.com/lwmacct/251218-go-config2args/pkg/templexp"
)

// Example_shellExpansion 演示 Shell 参数展开。
func Example_shellExpansion() {
	_ = os.Setenv("API_KEY", "sk-12345")
	defer func() { _ = os.Unsetenv("API_KEY") }()

	result, _ := templexp.ExpandTemplate(`key=${API_KEY}`)
	fmt.Println(result)

	// Output:
	// key=sk-12345
}

// Example_shellFallback 演示默认值回退语义。
func Example_shellFallback() {
	result, _ := templexp.ExpandTemplate(`host=${CONFIG2ARGS_EXAMPLE_HOST:-localhost}`)
	fmt.Println(result)

	// Output:
	// host=localhost
}

// Example_mapLookup 演示使用固定变量集展开。
func Example_mapLookup() {
	lookup := templexp.MapLookup(map[string]string{"JOBS": "8"})
	result, _ := templexp.Expand(`{"jobs": ${JOBS}, "target": "${TARGET:=all}-${TARGET}"}`, lookup)
	fmt.Println(result)

	// Output:
	// {"jobs": 8, "target": "all-all"}
}
