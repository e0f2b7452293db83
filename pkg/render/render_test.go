package render_test

import (
	"errors"
	"testing"

	"github.com/nikolalohinski/gonja/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251218-go-config2args/pkg/argv"
	"github.com/lwmacct/251218-go-config2args/pkg/render"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "plain text passes through",
			template: "--key1 1 -b udon",
			want:     "--key1 1 -b udon",
		},
		{
			name:     "set and loop",
			template: "--key1 {% set my_var = [1, 2, 3, 4] %}{% for i in my_var %}{{i}} {% endfor %}",
			want:     "--key1 1 2 3 4 ",
		},
		{
			name:     "interpolation",
			template: `--name {{ "udon" }}`,
			want:     "--name udon",
		},
		{
			name:     "conditional",
			template: `{% set debug = true %}{% if debug %}--verbose{% endif %}`,
			want:     "--verbose",
		},
		{
			name:     "autoescape",
			template: `{{ "<a>" }}`,
			want:     "&lt;a&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.Render(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_FlattenedTemplate(t *testing.T) {
	v, err := argv.DecodeJSON([]byte(`{"key1": "{% set my_var = [1, 2, 3, 4] %}{% for i in my_var %}{{i}} {% endfor %}"}`))
	require.NoError(t, err)

	raw, err := argv.Flatten(v, "")
	require.NoError(t, err)

	got, err := render.Render(raw)
	require.NoError(t, err)
	assert.Equal(t, "--key1 1 2 3 4 ", got)
}

func TestRender_InvalidTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{
			name:     "unterminated tag",
			template: "--key1 {% set my_var = [1, 2, 3, 4] %}{% for i in my_var %}{{i}} {% endfor %",
		},
		{
			name:     "missing endfor",
			template: "{% for i in [1, 2] %}{{ i }}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.Render(tt.template)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, render.ErrTemplate))

			var tplErr *render.TemplateError
			require.ErrorAs(t, err, &tplErr)
			assert.Equal(t, "parse", tplErr.Stage)
		})
	}
}

func TestRender_KeepsGlobalDefaults(t *testing.T) {
	got, err := render.Render(`{{ "<a>" }}`)
	require.NoError(t, err)
	assert.Equal(t, "&lt;a&gt;", got)

	assert.False(t, gonja.DefaultConfig.AutoEscape, "gonja.DefaultConfig must not be mutated")
}
