package rf

// CarrierBandwidth returns the number of resource blocks that fit in a
// channel once the guard band is subtracted on both edges. The channel
// bandwidth is given in MHz and the subcarrier spacing in kHz.
func CarrierBandwidth(bandwidth, scs int32) (int32, error) {
	guard, err := GuardBand(scs, bandwidth)
	if err != nil {
		return 0, err
	}
	usable := MHz(int64(bandwidth)) - 2*guard
	rbWidth := KHz(int64(scs)) * 12
	return int32(usable / rbWidth), nil
}
