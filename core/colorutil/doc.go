// Package colorutil implements perceptual color distance.
//
// A color is an sRGB triple with channel values in [0, 1]. The distance
// pipeline converts both colors through linear RGB and CIE XYZ (D65, 2°
// observer) into CIE L*a*b* and applies the CIEDE2000 delta E formula. The
// result is normalized to [0, 1].
//
// PerceptualDistance is plugged into vector parameter filters as the distance
// function for color-typed parameters, so "assets with a color close to red"
// ranks by how different the colors look, not by raw channel deltas.
package colorutil
