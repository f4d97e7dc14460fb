// internal/catalog/seed.go
package catalog

import "soundproofing-calculator/internal/models"

// SeedMaterials are the embedded catalog records used when the store is
// unreachable. Coverage is m^2 per unit for boards and insulation, meters
// per unit for sealants, bars and channels.
var SeedMaterials = []models.Material{
	{
		Name:            "12.5mm Sound Plasterboard",
		UnitCost:        9.80,
		Coverage:        2.88,
		Density:         10.6,
		Thickness:       0.0125,
		Absorption:      models.BandValues{Low: 0.05, Mid: 0.08, High: 0.10},
		Damping:         0.20,
		Decoupling:      0.00,
		STCContribution: 30,
	},
	{
		Name:            "SP15 Soundboard",
		UnitCost:        54.00,
		Coverage:        2.16,
		Density:         22.5,
		Thickness:       0.015,
		Absorption:      models.BandValues{Low: 0.10, Mid: 0.15, High: 0.20},
		Damping:         0.55,
		Decoupling:      0.15,
		STCContribution: 38,
	},
	{
		Name:            "Rockwool RW3 100mm Mineral Wool",
		UnitCost:        43.20,
		Coverage:        2.88,
		Density:         60,
		Thickness:       0.100,
		Absorption:      models.BandValues{Low: 0.60, Mid: 0.90, High: 0.95},
		Damping:         0.35,
		Decoupling:      0.05,
		STCContribution: 8,
	},
	{
		Name:            "Rockwool RWA45 50mm Mineral Wool",
		UnitCost:        31.50,
		Coverage:        4.32,
		Density:         45,
		Thickness:       0.050,
		Absorption:      models.BandValues{Low: 0.40, Mid: 0.80, High: 0.90},
		Damping:         0.30,
		Decoupling:      0.05,
		STCContribution: 6,
	},
	{
		Name:            "Tecsound 50 Membrane",
		UnitCost:        66.00,
		Coverage:        6.10,
		Density:         5.0,
		Thickness:       0.0026,
		Absorption:      models.BandValues{Low: 0.05, Mid: 0.05, High: 0.05},
		Damping:         0.70,
		Decoupling:      0.00,
		STCContribution: 25,
	},
	{
		Name:            "M20 Rubber Wall Panel",
		UnitCost:        28.40,
		Coverage:        1.98,
		Density:         18,
		Thickness:       0.020,
		Absorption:      models.BandValues{Low: 0.15, Mid: 0.25, High: 0.30},
		Damping:         0.60,
		Decoupling:      0.20,
		STCContribution: 32,
	},
	{
		Name:            "Acoustic Sealant",
		UnitCost:        7.40,
		Coverage:        3.0,
		Density:         1.5,
		Thickness:       0.006,
		Absorption:      models.BandValues{Low: 0.02, Mid: 0.02, High: 0.02},
		Damping:         0.10,
		Decoupling:      0.00,
		STCContribution: 2,
	},
	{
		Name:            "Isolation Strip Tape",
		UnitCost:        11.90,
		Coverage:        10.0,
		Density:         2.0,
		Thickness:       0.004,
		Absorption:      models.BandValues{Low: 0.02, Mid: 0.03, High: 0.03},
		Damping:         0.15,
		Decoupling:      0.25,
		STCContribution: 2,
	},
	{
		Name:            "Resilient Bar",
		UnitCost:        4.95,
		Coverage:        3.0,
		Density:         0.9,
		Thickness:       0.016,
		Absorption:      models.BandValues{Low: 0.01, Mid: 0.01, High: 0.01},
		Damping:         0.10,
		Decoupling:      0.60,
		STCContribution: 5,
	},
	{
		Name:            "Furring Channel",
		UnitCost:        5.60,
		Coverage:        3.0,
		Density:         1.1,
		Thickness:       0.025,
		Absorption:      models.BandValues{Low: 0.01, Mid: 0.01, High: 0.01},
		Damping:         0.10,
		Decoupling:      0.50,
		STCContribution: 4,
	},
	{
		Name:            "Genie Clip",
		UnitCost:        3.85,
		Coverage:        0.25,
		Density:         0.3,
		Thickness:       0.030,
		Absorption:      models.BandValues{Low: 0.01, Mid: 0.01, High: 0.01},
		Damping:         0.20,
		Decoupling:      0.80,
		STCContribution: 6,
	},
	{
		Name:            "Acoustic Screws Box",
		UnitCost:        14.20,
		Coverage:        1.0,
		Density:         0.5,
		Thickness:       0.0,
		Absorption:      models.BandValues{},
		Damping:         0.00,
		Decoupling:      0.00,
		STCContribution: 0,
	},
	{
		Name:            "18mm Acoustic Floorboard",
		UnitCost:        38.70,
		Coverage:        2.16,
		Density:         13.5,
		Thickness:       0.018,
		Absorption:      models.BandValues{Low: 0.08, Mid: 0.10, High: 0.12},
		Damping:         0.40,
		Decoupling:      0.10,
		STCContribution: 26,
	},
}

// SeedSolutions are the embedded constructive solutions. Catalog order is
// the tie-break order for equal ranking scores.
var SeedSolutions = []models.Solution{
	// --- Walls ---
	{
		CodeName:    "M20WallStandard",
		DisplayName: "M20 Solution (Standard)",
		SurfaceType: models.SurfaceWalls,
		Materials: []models.SolutionMaterial{
			{Name: "M20 Rubber Wall Panel"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         45,
		STCRating:              52,
		FrequencyRange:         models.FrequencyRange{Low: 90, High: 4000},
		Variant:                models.VariantStandard,
		InstallationComplexity: 4,
		Features:               []string{"slim profile", "direct fix"},
		Classification:         "airborne",
	},
	{
		CodeName:    "M20WallSP15",
		DisplayName: "M20 Solution (SP15 Soundboard Upgrade)",
		SurfaceType: models.SurfaceWalls,
		Materials: []models.SolutionMaterial{
			{Name: "M20 Rubber Wall Panel"},
			{Name: "SP15 Soundboard"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         50,
		STCRating:              54,
		FrequencyRange:         models.FrequencyRange{Low: 80, High: 4500},
		Variant:                models.VariantSP15,
		InstallationComplexity: 5,
		Features:               []string{"slim profile", "direct fix"},
		Classification:         "airborne",
	},
	{
		CodeName:    "IndependentWallStandard",
		DisplayName: "Independent Wall (Standard)",
		SurfaceType: models.SurfaceWalls,
		Materials: []models.SolutionMaterial{
			{Name: "Rockwool RW3 100mm Mineral Wool"},
			{Name: "Tecsound 50 Membrane"},
			{Name: "12.5mm Sound Plasterboard", Layers: 2},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         58,
		STCRating:              62,
		FrequencyRange:         models.FrequencyRange{Low: 60, High: 5000},
		Variant:                models.VariantStandard,
		InstallationComplexity: 7,
		Features:               []string{"thermal insulation", "fire resistant", "maximum isolation"},
		Classification:         "airborne",
	},
	{
		CodeName:    "ResilientBarWallStandard",
		DisplayName: "Resilient Bar Wall (Standard)",
		SurfaceType: models.SurfaceWalls,
		Materials: []models.SolutionMaterial{
			{Name: "Resilient Bar"},
			{Name: "Rockwool RWA45 50mm Mineral Wool"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         48,
		STCRating:              50,
		FrequencyRange:         models.FrequencyRange{Low: 100, High: 4000},
		Variant:                models.VariantStandard,
		InstallationComplexity: 5,
		Features:               []string{"decoupled", "thermal insulation"},
		Classification:         "airborne",
	},
	{
		CodeName:    "GenieClipWallStandard",
		DisplayName: "Genie Clip Wall (Standard)",
		SurfaceType: models.SurfaceWalls,
		Materials: []models.SolutionMaterial{
			{Name: "Genie Clip"},
			{Name: "Furring Channel"},
			{Name: "Rockwool RWA45 50mm Mineral Wool"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         54,
		STCRating:              58,
		FrequencyRange:         models.FrequencyRange{Low: 63, High: 4000},
		Variant:                models.VariantStandard,
		InstallationComplexity: 6,
		Features:               []string{"decoupled", "impact isolation"},
		Classification:         "impact",
	},
	{
		CodeName:    "GenieClipWallSP15",
		DisplayName: "Genie Clip Wall (SP15 Soundboard Upgrade)",
		SurfaceType: models.SurfaceWalls,
		Materials: []models.SolutionMaterial{
			{Name: "Genie Clip"},
			{Name: "Furring Channel"},
			{Name: "Rockwool RWA45 50mm Mineral Wool"},
			{Name: "SP15 Soundboard"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         58,
		STCRating:              60,
		FrequencyRange:         models.FrequencyRange{Low: 63, High: 4500},
		Variant:                models.VariantSP15,
		InstallationComplexity: 7,
		Features:               []string{"decoupled", "impact isolation"},
		Classification:         "impact",
	},

	// --- Ceilings ---
	{
		CodeName:    "ResilientBarCeilingStandard",
		DisplayName: "Resilient Bar Ceiling (Standard)",
		SurfaceType: models.SurfaceCeiling,
		Materials: []models.SolutionMaterial{
			{Name: "Resilient Bar"},
			{Name: "Rockwool RW3 100mm Mineral Wool"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         48,
		STCRating:              52,
		FrequencyRange:         models.FrequencyRange{Low: 100, High: 4000},
		Variant:                models.VariantStandard,
		InstallationComplexity: 6,
		Features:               []string{"decoupled"},
		Classification:         "airborne",
	},
	{
		CodeName:    "GenieClipCeilingStandard",
		DisplayName: "Genie Clip Ceiling (Standard)",
		SurfaceType: models.SurfaceCeiling,
		Materials: []models.SolutionMaterial{
			{Name: "Genie Clip"},
			{Name: "Furring Channel"},
			{Name: "Rockwool RW3 100mm Mineral Wool"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         55,
		STCRating:              58,
		FrequencyRange:         models.FrequencyRange{Low: 63, High: 4000},
		Variant:                models.VariantStandard,
		InstallationComplexity: 7,
		Features:               []string{"decoupled", "impact isolation"},
		Classification:         "impact",
	},
	{
		CodeName:    "GenieClipCeilingLB3",
		DisplayName: "LB3 Genie Clip Ceiling (SP15 Soundboard Upgrade)",
		SurfaceType: models.SurfaceCeiling,
		Materials: []models.SolutionMaterial{
			{Name: "Genie Clip"},
			{Name: "Furring Channel"},
			{Name: "Rockwool RW3 100mm Mineral Wool"},
			{Name: "SP15 Soundboard"},
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         60,
		STCRating:              61,
		FrequencyRange:         models.FrequencyRange{Low: 60, High: 4500},
		Variant:                models.VariantSP15,
		InstallationComplexity: 8,
		Features:               []string{"decoupled", "impact isolation", "maximum isolation"},
		Classification:         "impact",
	},

	// --- Floors ---
	{
		CodeName:    "FloatingFloorStandard",
		DisplayName: "Floating Floor (Standard)",
		SurfaceType: models.SurfaceFloor,
		Materials: []models.SolutionMaterial{
			{Name: "Tecsound 50 Membrane"},
			{Name: "Isolation Strip Tape"},
			{Name: "18mm Acoustic Floorboard"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         42,
		STCRating:              48,
		FrequencyRange:         models.FrequencyRange{Low: 50, High: 2000},
		Variant:                models.VariantStandard,
		InstallationComplexity: 5,
		Features:               []string{"impact isolation", "underfloor"},
		Classification:         "impact",
	},
	{
		CodeName:    "IsolatedJoistFloor",
		DisplayName: "Isolated Joist Floor (Standard)",
		SurfaceType: models.SurfaceFloor,
		Materials: []models.SolutionMaterial{
			{Name: "Resilient Bar"},
			{Name: "Rockwool RWA45 50mm Mineral Wool"},
			{Name: "Tecsound 50 Membrane"},
			{Name: "18mm Acoustic Floorboard"},
			{Name: "Acoustic Screws Box"},
		},
		SoundReduction:         48,
		STCRating:              54,
		FrequencyRange:         models.FrequencyRange{Low: 40, High: 2500},
		Variant:                models.VariantStandard,
		InstallationComplexity: 8,
		Features:               []string{"impact isolation", "decoupled", "underfloor"},
		Classification:         "impact",
	},
}
