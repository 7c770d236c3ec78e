// Package fiveg implements the contracts exchanged between RAN operators:
// the F1 midhaul contract between CU and DU and the rf_config contract
// between DU and a simulated UE.
//
// Contract payloads travel in ConfigMaps. Key names and string encodings
// are fixed on both sides, ints travel as decimal strings and the PLMN list
// as a JSON array. A payload either decodes and validates completely or is
// treated as not published yet.
package fiveg
