package fiveg

import "strconv"

// RFConfigVersion is the published contract payload version. Consumers use
// it to detect incompatible payload layouts after upgrades.
const RFConfigVersion = 0

// ConfigMap keys of the rf_config contract.
const (
	KeyVersion          = "version"
	KeyRFSIMAddress     = "rfsim_address"
	KeySST              = "sst"
	KeySD               = "sd"
	KeyBand             = "band"
	KeyDLFreq           = "dl_freq"
	KeyCarrierBandwidth = "carrier_bandwidth"
	KeyNumerology       = "numerology"
	KeyStartSubcarrier  = "start_subcarrier"
)

// RFConfigData is what the DU publishes for a simulated UE: the radio
// parameters needed to join the cell, plus the rfsim server address when
// the DU itself runs in simulation mode.
type RFConfigData struct {
	RFSIMAddress     string
	SST              int32
	SD               *int32
	Band             int32
	DLFreq           int64
	CarrierBandwidth int32
	Numerology       int32
	StartSubcarrier  int32
}

// Encode renders the payload in ConfigMap form. The rfsim address is only
// present in simulation mode and sd only when the slice carries a
// differentiator. SD travels as a decimal string.
func (d RFConfigData) Encode() map[string]string {
	data := map[string]string{
		KeyVersion:          strconv.Itoa(RFConfigVersion),
		KeySST:              strconv.FormatInt(int64(d.SST), 10),
		KeyBand:             strconv.FormatInt(int64(d.Band), 10),
		KeyDLFreq:           strconv.FormatInt(d.DLFreq, 10),
		KeyCarrierBandwidth: strconv.FormatInt(int64(d.CarrierBandwidth), 10),
		KeyNumerology:       strconv.FormatInt(int64(d.Numerology), 10),
		KeyStartSubcarrier:  strconv.FormatInt(int64(d.StartSubcarrier), 10),
	}
	if d.RFSIMAddress != "" {
		data[KeyRFSIMAddress] = d.RFSIMAddress
	}
	if d.SD != nil {
		data[KeySD] = strconv.FormatInt(int64(*d.SD), 10)
	}
	return data
}
