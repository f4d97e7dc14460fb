// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundproofing-calculator/internal/models"
)

const validRegistry = `{
	"version": "1.2.0",
	"lastUpdated": "2026-08-01",
	"solutions": [
		{
			"code_name": "CustomWall",
			"display_name": "Custom Wall Build-Up",
			"surface_type": "walls",
			"materials": [
				{"name": "12.5mm Sound Plasterboard", "layers": 2},
				{"name": "Acoustic Sealant"}
			],
			"sound_reduction": 45,
			"stc_rating": 52,
			"variant": "sp15",
			"installation_complexity": 5,
			"classification": "airborne"
		}
	]
}`

func TestParseRegistry(t *testing.T) {
	reg, err := ParseRegistry([]byte(validRegistry))
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", reg.Version)
	require.Len(t, reg.Solutions, 1)

	sol := reg.Solutions[0]
	assert.Equal(t, "CustomWall", sol.CodeName)
	assert.Equal(t, models.SurfaceWalls, sol.SurfaceType)
	assert.Equal(t, models.VariantSP15, sol.Variant)
	assert.Equal(t, 2, sol.Materials[0].Layers)
}

func TestParseRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "missing version", body: `{"solutions": []}`},
		{
			name: "unknown surface type",
			body: `{"version":"1","solutions":[{"code_name":"X","display_name":"X","surface_type":"roof","materials":[{"name":"m"}],"stc_rating":10}]}`,
		},
		{
			name: "empty material list",
			body: `{"version":"1","solutions":[{"code_name":"X","display_name":"X","surface_type":"walls","materials":[],"stc_rating":10}]}`,
		},
		{
			name: "labor rate above one",
			body: `{"version":"1","solutions":[{"code_name":"X","display_name":"X","surface_type":"walls","materials":[{"name":"m"}],"stc_rating":10,"labor_rate":1.5}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.json")
	require.NoError(t, os.WriteFile(path, []byte(validRegistry), 0o644))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Len(t, reg.Solutions, 1)

	_, err = LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
