package loader

import (
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
)

// Default file names inside the asset directory.
const (
	DayTextureFile    = "day_earth.jpg"
	NightTextureFile  = "night_earth.jpg"
	SkyboxTextureFile = "skybox.jpg"
	CloudTextureFile  = "earth_clouds.jpg"
	SunTextureFile    = "sun.jpg"
)

// DefaultAssets returns the planet texture set found in dir. The day and night maps are required;
// the rest fall back to placeholders.
//
// Parameters:
//   - dir: the asset directory
//
// Returns:
//   - []Asset: one asset per renderer slot
func DefaultAssets(dir string) []Asset {
	return []Asset{
		{Slot: renderer.SlotDay, Path: filepath.Join(dir, DayTextureFile)},
		{Slot: renderer.SlotNight, Path: filepath.Join(dir, NightTextureFile)},
		{Slot: renderer.SlotSkybox, Path: filepath.Join(dir, SkyboxTextureFile), Optional: true},
		{Slot: renderer.SlotClouds, Path: filepath.Join(dir, CloudTextureFile), Optional: true},
		{Slot: renderer.SlotSun, Path: filepath.Join(dir, SunTextureFile), Optional: true},
	}
}
