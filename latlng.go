package h3abi

import (
	"math"
)

// DegsToRads converts degrees to radians.
func DegsToRads(degrees float64) float64 { return degrees * degsToRads }

// RadsToDegs converts radians to degrees.
func RadsToDegs(radians float64) float64 { return radians * radsToDegs }

// LatLngToCell writes the cell at res containing ll.
func LatLngToCell(ll LatLng, res int, out *Index) Code {
	if err := validateRes(res); err != nil {
		return codeOf(err)
	}
	if !ll.finite() {
		return codeOf(&LatLngError{LatLng: ll})
	}
	h, err := engineLatLngToCell(ll, res)
	if err != nil {
		return codeOf(err)
	}
	*out = h
	return OK
}

// The great circle distances have no result code; a non-finite coordinate
// yields NaN.

func greatCircle(a, b LatLng, unit metric) float64 {
	if !a.finite() || !b.finite() {
		return math.NaN()
	}
	return engineGreatCircleDistance(a, b, unit)
}

// GreatCircleDistanceRads returns the haversine distance in radians.
func GreatCircleDistanceRads(a, b LatLng) float64 { return greatCircle(a, b, rads) }

// GreatCircleDistanceKm returns the haversine distance in kilometers.
func GreatCircleDistanceKm(a, b LatLng) float64 { return greatCircle(a, b, km) }

// GreatCircleDistanceM returns the haversine distance in meters.
func GreatCircleDistanceM(a, b LatLng) float64 { return greatCircle(a, b, meters) }
