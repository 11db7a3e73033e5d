// Package config holds process-wide rendering settings.
package config

// Image rows are flipped on load by default so that textures authored
// top-left-origin map onto the bottom-left-origin GL convention.
var flipTexturesOnLoad = true

func GetFlipTexturesOnLoad() bool {
	return flipTexturesOnLoad
}

func SetFlipTexturesOnLoad(flip bool) {
	flipTexturesOnLoad = flip
}

var generateMipmaps = true

func GetGenerateMipmaps() bool {
	return generateMipmaps
}

func SetGenerateMipmaps(generate bool) {
	generateMipmaps = generate
}
