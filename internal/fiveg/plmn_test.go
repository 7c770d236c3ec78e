package fiveg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sdValue(v int32) *int32 { return &v }

func TestPLMNValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		plmn PLMN
	}{
		{name: "two digit mnc", plmn: PLMN{MCC: "001", MNC: "01", SST: 1}},
		{name: "three digit mnc", plmn: PLMN{MCC: "310", MNC: "410", SST: 1}},
		{name: "with sd", plmn: PLMN{MCC: "999", MNC: "99", SST: 12, SD: sdValue(0xa4)}},
		{name: "sst bounds", plmn: PLMN{MCC: "001", MNC: "01", SST: 255}},
		{name: "sd upper bound", plmn: PLMN{MCC: "001", MNC: "01", SST: 0, SD: sdValue(16777215)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, tt.plmn.Validate())
		})
	}
}

func TestPLMNValidateInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		plmn PLMN
	}{
		{name: "mcc too short", plmn: PLMN{MCC: "01", MNC: "01", SST: 1}},
		{name: "mcc too long", plmn: PLMN{MCC: "0001", MNC: "01", SST: 1}},
		{name: "mcc not digits", plmn: PLMN{MCC: "abc", MNC: "01", SST: 1}},
		{name: "mnc too short", plmn: PLMN{MCC: "001", MNC: "1", SST: 1}},
		{name: "mnc too long", plmn: PLMN{MCC: "001", MNC: "0001", SST: 1}},
		{name: "sst negative", plmn: PLMN{MCC: "001", MNC: "01", SST: -1}},
		{name: "sst too large", plmn: PLMN{MCC: "001", MNC: "01", SST: 256}},
		{name: "sd negative", plmn: PLMN{MCC: "001", MNC: "01", SST: 1, SD: sdValue(-1)}},
		{name: "sd too large", plmn: PLMN{MCC: "001", MNC: "01", SST: 1, SD: sdValue(16777216)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tt.plmn.Validate())
		})
	}
}

func TestPLMNJSONOmitsAbsentSD(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(PLMN{MCC: "001", MNC: "01", SST: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mcc": "001", "mnc": "01", "sst": 1}`, string(raw))

	raw, err = json.Marshal(PLMN{MCC: "001", MNC: "01", SST: 1, SD: sdValue(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mcc": "001", "mnc": "01", "sst": 1, "sd": 1}`, string(raw))
}
