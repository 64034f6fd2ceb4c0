// Package circstat provides circular (directional) statistics for
// compass-bearing data.
//
// Observations are geographic bearings in degrees (0° = north,
// increasing clockwise). The package includes:
//
//   - [Describe]: circular mean direction and mean resultant length
//   - [WatsonTwoSample]: two-sample Watson U² test of equal
//     circular distributions
//
// # Significance testing
//
// The Watson U² statistic uses the asymptotic null distribution for
// its p-value:
//
//	res := circstat.WatsonTwoSample(a, b)
//	if res.PValue < 0.05 {
//	    // distributions differ
//	}
package circstat
