// Package colormath provides OKLCH color representation and the pure
// conversions the palette engine builds on: hex parsing, OKLCH <-> sRGB <->
// Display P3, CSS-Color-4 gamut mapping, and APCA contrast.
//
// All conversions are total on valid OklchColor values; parsing is the only
// operation that can fail, and it fails by returning a zero value and false
// rather than an error, matching how the rest of the palette engine treats
// malformed brand input as data to filter, not an exception to raise.
package colormath
