// Package analysis inspects population time series: summary statistics and
// the dominant oscillation period from a power spectrum.
package analysis
