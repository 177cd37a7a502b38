package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	logoDir  = "logo/"
	badgeDir = "badge/"

	// LogoActive is shown while a countdown runs.
	LogoActive = "active.svg"
	// LogoPaused is shown while the timer is stopped.
	LogoPaused = "paused.svg"

	BadgeSmall = "pulse_small.svg"
	BadgeLarge = "pulse_large.svg"
)

//go:embed logo/*.svg
var logoFS embed.FS

//go:embed badge/*.svg
var badgeFS embed.FS

var logoCache sync.Map
var badgeCache sync.Map

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	return loadResource(logoFS, logoDir+fileName, &logoCache)
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Badge returns a Fyne resource for the given badge frame.
func Badge(fileName string) (fyne.Resource, error) {
	return loadResource(badgeFS, badgeDir+fileName, &badgeCache)
}

// MustBadge returns a Fyne resource or panics on error.
func MustBadge(fileName string) fyne.Resource {
	resource, err := Badge(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// StatusLogo picks the logo for the running state.
func StatusLogo(running bool) fyne.Resource {
	if running {
		return MustLogo(LogoActive)
	}
	return MustLogo(LogoPaused)
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
