package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustlay/cli/internal/templates"
)

func TestLayerNames(t *testing.T) {
	assert.Equal(t, []string{"application", "domain", "infrastructure", "interface"}, LayerNames())
}

func TestForLayer(t *testing.T) {
	tests := []struct {
		layer      string
		subfolders []string
	}{
		{"application", []string{"di", "interactor", "use_case", "model", "util"}},
		{"domain", []string{"interactor", "repository", "entity"}},
		{"infrastructure", []string{"data_access", "dto", "enum", "mapper", "repository"}},
		{"interface", []string{"controller", "model"}},
	}

	for _, tt := range tests {
		t.Run(tt.layer, func(t *testing.T) {
			l, ok := ForLayer(tt.layer)
			require.True(t, ok)

			names := make([]string, len(l.Subfolders))
			for i, s := range l.Subfolders {
				names[i] = s.Name
			}
			assert.Equal(t, tt.subfolders, names)
		})
	}

	_, ok := ForLayer("presentation")
	assert.False(t, ok)
}

func TestLayers_ReturnsCopy(t *testing.T) {
	layers := Layers()
	layers[0].Subfolders[0].Name = "mutated"
	layers[0].Subfolders[0].Module.Stem = "mutated"

	fresh := Layers()
	assert.Equal(t, "di", fresh[0].Subfolders[0].Name)
	assert.Equal(t, "container", fresh[0].Subfolders[0].Module.Stem)
}

func TestTemplateNames(t *testing.T) {
	assert.Equal(t, []string{
		"container",
		"i_interactor",
		"use_case",
		"interactor_impl",
		"i_repository",
		"data_source",
		"repository_impl",
		"controller",
	}, TemplateNames())
}

func TestDestinationPath(t *testing.T) {
	root := filepath.Join("src", "features", "user_profile")
	want := map[string]string{
		"container":       "application/di/container.rs",
		"i_interactor":    "application/interactor/i_user_profile_interactor.rs",
		"use_case":        "application/use_case/user_profile_use_case.rs",
		"interactor_impl": "domain/interactor/user_profile_interactor_impl.rs",
		"i_repository":    "domain/repository/i_user_profile_repository.rs",
		"data_source":     "infrastructure/data_access/user_profile_data_source.rs",
		"repository_impl": "infrastructure/repository/user_profile_repository_impl.rs",
		"controller":      "interface/controller/user_profile_controller.rs",
	}

	dests := Destinations()
	require.Len(t, dests, len(want))
	for _, d := range dests {
		assert.Equal(t, filepath.Join(root, filepath.FromSlash(want[d.Module.Template])),
			d.Path(root, "user_profile"), d.Module.Template)
	}
}

func TestFeatureRoot(t *testing.T) {
	assert.Equal(t, filepath.Join("work", "src", "features", "order_item"), FeatureRoot("work", "order_item"))
}

func TestAggregatorContent(t *testing.T) {
	assert.Equal(t,
		"pub mod application;\npub mod domain;\npub mod infrastructure;\npub mod interface;",
		featureAggregator())

	app, _ := ForLayer(LayerApplication)
	assert.Equal(t,
		"pub mod di;\npub mod interactor;\npub mod use_case;\npub mod model;\npub mod util;",
		layerAggregator(app))

	assert.Equal(t, "pub mod i_orders_interactor;", subfolderAggregator(app.Subfolders[1], "orders"))
	assert.Equal(t, "pub mod container;", subfolderAggregator(app.Subfolders[0], "orders"))
	assert.Empty(t, subfolderAggregator(app.Subfolders[3], "orders"))
}

func TestTemplateNames_CoverRegistry(t *testing.T) {
	assert.ElementsMatch(t, templates.LogicalNames(), TemplateNames())
}
