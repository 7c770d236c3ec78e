package fiveg

import (
	"fmt"
	"regexp"
)

var (
	mccPattern = regexp.MustCompile(`^[0-9]{3}$`)
	mncPattern = regexp.MustCompile(`^[0-9]{2,3}$`)
)

// PLMN identifies a public land mobile network together with the network
// slice served for it. MCC and MNC stay strings, their leading zeros are
// significant.
type PLMN struct {
	MCC string `json:"mcc"`
	MNC string `json:"mnc"`
	SST int32  `json:"sst"`
	SD  *int32 `json:"sd,omitempty"`
}

// Validate checks identifier formats and slice value ranges.
func (p PLMN) Validate() error {
	if !mccPattern.MatchString(p.MCC) {
		return fmt.Errorf("mcc %q must be 3 digits", p.MCC)
	}
	if !mncPattern.MatchString(p.MNC) {
		return fmt.Errorf("mnc %q must be 2 or 3 digits", p.MNC)
	}
	if p.SST < 0 || p.SST > 255 {
		return fmt.Errorf("sst %d out of range 0..255", p.SST)
	}
	if p.SD != nil && (*p.SD < 0 || *p.SD > 0xffffff) {
		return fmt.Errorf("sd %d out of range 0..16777215", *p.SD)
	}
	return nil
}
