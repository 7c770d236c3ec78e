package fiveg

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ranstack/oai-du-operator/internal/netutil"
)

// ConfigMap keys of the F1 contract.
const (
	KeyF1IPAddress = "f1_ip_address"
	KeyF1Port      = "f1_port"
	KeyTAC         = "tac"
	KeyPLMNs       = "plmns"
)

// Tracking area codes are 24 bit, zero is reserved.
const (
	minTAC = 1
	maxTAC = 16777215
)

// F1ProviderData is what the CU publishes for the DU: where to reach the CU
// on the F1 interface and which networks to serve.
type F1ProviderData struct {
	F1IPAddress string
	F1Port      int32
	TAC         int32
	PLMNs       []PLMN
}

// ParseF1ProviderData decodes and validates CU provider data from ConfigMap
// form. Any missing or malformed field makes the whole payload unusable, the
// caller treats that the same as data not published yet.
func ParseF1ProviderData(data map[string]string) (*F1ProviderData, error) {
	ip := data[KeyF1IPAddress]
	if !netutil.BareIP(ip) {
		return nil, fmt.Errorf("f1_ip_address %q is not an IP address", ip)
	}

	port, err := strconv.ParseInt(data[KeyF1Port], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parsing f1_port: %w", err)
	}
	if !netutil.ValidPort(int(port)) {
		return nil, fmt.Errorf("f1_port %d out of range", port)
	}

	tac, err := strconv.ParseInt(data[KeyTAC], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parsing tac: %w", err)
	}
	if tac < minTAC || tac > maxTAC {
		return nil, fmt.Errorf("tac %d out of range %d..%d", tac, minTAC, maxTAC)
	}

	var plmns []PLMN
	if err := json.Unmarshal([]byte(data[KeyPLMNs]), &plmns); err != nil {
		return nil, fmt.Errorf("parsing plmns: %w", err)
	}
	if len(plmns) == 0 {
		return nil, fmt.Errorf("plmns must not be empty")
	}
	for i, plmn := range plmns {
		if err := plmn.Validate(); err != nil {
			return nil, fmt.Errorf("plmns[%d]: %w", i, err)
		}
	}

	return &F1ProviderData{
		F1IPAddress: ip,
		F1Port:      int32(port),
		TAC:         int32(tac),
		PLMNs:       plmns,
	}, nil
}

// F1RequirerData is what the DU publishes back to the CU: the port it
// listens on for F1 traffic.
type F1RequirerData struct {
	F1Port int32
}

// Encode renders the requirer payload in ConfigMap form.
func (d F1RequirerData) Encode() map[string]string {
	return map[string]string{
		KeyF1Port: strconv.FormatInt(int64(d.F1Port), 10),
	}
}
