package colorutil

import "math"

// distanceCap normalizes CIEDE2000 output. The formula is theoretically
// uncapped but values above 100 mean "extremely different" anyway.
const distanceCap = 100.0

// SRGBToXYZ converts sRGB coordinates to CIE XYZ coordinates.
//
// Expects RGB values between 0 and 1.
// Returns XYZ values between (0 to 0.9505, 0 to 1.0000, 0 to 1.0888).
// For use with Observer = 2°, Illuminant = D65.
func SRGBToXYZ(rgb [3]float64) [3]float64 {
	var linear [3]float64
	for i, channel := range rgb {
		if channel > 0.04045 {
			linear[i] = math.Pow((channel+0.055)/1.055, 2.4)
		} else {
			linear[i] = channel / 12.92
		}
	}
	return [3]float64{
		linear[0]*0.4124 + linear[1]*0.3576 + linear[2]*0.1805,
		linear[0]*0.2126 + linear[1]*0.7152 + linear[2]*0.0722,
		linear[0]*0.0193 + linear[1]*0.1192 + linear[2]*0.9505,
	}
}

// XYZToLab converts CIE XYZ coordinates to CIE L*a*b* coordinates.
//
// Expects XYZ values between (0 to 0.9505, 0 to 1.0000, 0 to 1.0888).
// Returns Lab values as (0 to 100, -128 to 128, -128 to 128).
// For use with Observer = 2°, Illuminant = D65.
func XYZToLab(xyz [3]float64) [3]float64 {
	// D65 white point normalization
	x := labTransform(xyz[0] / 0.95047)
	y := labTransform(xyz[1])
	z := labTransform(xyz[2] / 1.08883)

	return [3]float64{
		116*y - 16,
		500 * (x - y),
		200 * (y - z),
	}
}

func labTransform(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// PerceptualDistance implements the CIEDE2000 formula for perceptual color
// distance.
//
// Expects sRGB triples with values between 0 and 1. Returns a value between 0
// and 1, where 0 represents an identical color and 1 an extremely different
// one (raw distances above 100 are clamped before normalizing).
func PerceptualDistance(rgb1, rgb2 [3]float64) float64 {
	lab1 := XYZToLab(SRGBToXYZ(rgb1))
	lab2 := XYZToLab(SRGBToXYZ(rgb2))

	distance := ciede2000(lab1, lab2)
	if distance > distanceCap {
		distance = distanceCap
	}
	return distance / distanceCap
}

// ciede2000 computes the raw CIEDE2000 delta E between two Lab triples.
func ciede2000(lab1, lab2 [3]float64) float64 {
	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	avgL := (l1 + l2) / 2

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	avgC := (c1 + c2) / 2

	// chroma rotation term
	g := 0.5 * (1 - math.Sqrt(math.Pow(avgC, 7)/(math.Pow(avgC, 7)+math.Pow(25, 7))))

	a1p := (1 + g) * a1
	a2p := (1 + g) * a2

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	avgCp := (c1p + c2p) / 2

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	avgHp := (h1p + h2p) / 2
	if math.Abs(h1p-h2p) > 180 {
		avgHp += 180
	}

	t := 1 -
		0.17*math.Cos(radians(avgHp-30)) +
		0.24*math.Cos(radians(2*avgHp)) +
		0.32*math.Cos(radians(3*avgHp+6)) -
		0.20*math.Cos(radians(4*avgHp-63))

	deltaHp := h2p - h1p
	if math.Abs(deltaHp) > 180 {
		if h2p > h1p {
			deltaHp -= 360
		} else {
			deltaHp += 360
		}
	}

	deltaLp := l2 - l1
	deltaCp := c2p - c1p
	deltaHpTerm := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(deltaHp)/2)

	// weighting functions
	sl := 1 + (0.015*math.Pow(avgL-50, 2))/math.Sqrt(20+math.Pow(avgL-50, 2))
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t

	// rotation term
	deltaRo := 30 * math.Exp(-math.Pow((avgHp-275)/25, 2))
	rc := math.Sqrt(math.Pow(avgCp, 7) / (math.Pow(avgCp, 7) + math.Pow(25, 7)))
	rt := -2 * rc * math.Sin(2*radians(deltaRo))

	return math.Sqrt(
		math.Pow(deltaLp/sl, 2) +
			math.Pow(deltaCp/sc, 2) +
			math.Pow(deltaHpTerm/sh, 2) +
			rt*(deltaCp/sc)*(deltaHpTerm/sh))
}

func hueAngle(b, ap float64) float64 {
	h := degrees(math.Atan2(b, ap))
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
