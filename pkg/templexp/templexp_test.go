package templexp_test

import (
	"testing"

	"github.com/lwmacct/251218-go-config2args/pkg/templexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplate_ShellParameterExpansion(t *testing.T) {
	t.Setenv("SHELL_SET", "set-value")
	t.Setenv("SHELL_EMPTY", "")

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "basic expansion",
			template: `prefix-${SHELL_SET}-suffix`,
			want:     "prefix-set-value-suffix",
		},
		{
			name:     "missing expands to empty",
			template: `x=${SHELL_MISSING}`,
			want:     "x=",
		},
		{
			name:     "fallback with colon treats empty as unset",
			template: `${SHELL_EMPTY:-fallback}`,
			want:     "fallback",
		},
		{
			name:     "fallback without colon keeps empty",
			template: `x=${SHELL_EMPTY-fallback}`,
			want:     "x=",
		},
		{
			name:     "alternate with colon",
			template: `${SHELL_SET:+alt}`,
			want:     "alt",
		},
		{
			name:     "nested fallback",
			template: `${SHELL_MISSING:-${SHELL_SET}}`,
			want:     "set-value",
		},
		{
			name:     "assignment updates template data",
			template: `${SHELL_NEW:=value}-${SHELL_NEW}`,
			want:     "value-value",
		},
		{
			name:     "literal dollar",
			template: `$$${SHELL_SET}`,
			want:     "$set-value",
		},
		{
			name:     "required var triggers error",
			template: `${SHELL_MISSING:?missing}`,
			wantErr:  true,
			errMsg:   "missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templexp.ExpandTemplate(tt.template)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_MapLookup(t *testing.T) {
	lookup := templexp.MapLookup(map[string]string{
		"SET":   "v",
		"EMPTY": "",
	})

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "set", template: `${SET}`, want: "v"},
		{name: "unset", template: `[${NOPE}]`, want: "[]"},
		{name: "alternate without colon on empty", template: `${EMPTY+alt}`, want: "alt"},
		{name: "alternate with colon on empty", template: `[${EMPTY:+alt}]`, want: "[]"},
		{name: "assign without colon keeps empty", template: `[${EMPTY=x}]`, want: "[]"},
		{name: "assign with colon replaces empty", template: `${EMPTY:=x}${EMPTY}`, want: "xx"},
		{name: "unknown operator kept", template: `${SET:x}`, want: "${SET:x}"},
		{name: "invalid name kept", template: `${1ABC}`, want: "${1ABC}"},
		{name: "unterminated kept", template: `${SET`, want: "${SET"},
		{name: "bare dollar kept", template: `$SET $`, want: "$SET $"},
		{name: "jinja braces untouched", template: `{{ i }} {% for i in xs %}`, want: `{{ i }} {% for i in xs %}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templexp.Expand(tt.template, lookup)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_AssignmentIsScoped(t *testing.T) {
	vars := map[string]string{}
	lookup := templexp.MapLookup(vars)

	got, err := templexp.Expand(`${NAME:=first}`, lookup)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
	assert.Empty(t, vars, "assignment must not leak into the source")

	got, err = templexp.Expand(`[${NAME}]`, lookup)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestExpand_RequiredWithoutMessage(t *testing.T) {
	_, err := templexp.Expand(`${NEEDED?}`, templexp.MapLookup(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEEDED: parameter null or not set")
}

func TestExpandTemplate_JSONConfig(t *testing.T) {
	t.Setenv("C2A_INPUT", "in.mp4")
	t.Setenv("C2A_CODEC", "libx264")

	jsonConfig := `{"i": "${C2A_INPUT}", "c:v": "${C2A_CODEC:-copy}", "preset": "${C2A_PRESET:-medium}", "crf": 23}`

	expanded, err := templexp.ExpandTemplate(jsonConfig)
	require.NoError(t, err, "templexp.ExpandTemplate() should succeed")
	assert.Equal(t, `{"i": "in.mp4", "c:v": "libx264", "preset": "medium", "crf": 23}`, expanded)
}
