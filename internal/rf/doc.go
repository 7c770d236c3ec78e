// Package rf derives 5G NR FR1 radio parameters from channel settings.
//
// Given a band, center frequency, channel bandwidth and subcarrier spacing,
// it computes the SSB position, downlink Point A, carrier bandwidth in
// resource blocks, the initial bandwidth part and the CORESET#0 configuration
// index per 3GPP TS 38.104 / TS 38.213. All arithmetic is integer exact:
// frequencies are int64 Hertz, never floats.
package rf
