// Package classify maps measurements onto qualitative descriptors.
//
// Every scalar rule is an ordered table of inclusive upper bounds evaluated
// with <=: the first bound the value does not exceed wins, and values above
// every bound land in the final, unbounded level.
//
//	Temperature (°C): freezing ≤0 | cold ≤10 | cool ≤17 | warm ≤24 | hot ≤35 | very hot
//	Humidity (%):     very dry ≤15 | dry ≤30 | humid ≤60 | very humid ≤85 | heavy
//	Wind (m/s):       no wind ≤0.2 | gentle breeze ≤3.3 | wind ≤8.0 | strong ≤13.8 | very strong
//	Pressure (hPa):   very low ≤1000 | low ≤1010 | normal ≤1020 | high ≤1030 | very high
//
// Ranges are classified by their maximum, so the extreme of a period drives
// the wording.
package classify
