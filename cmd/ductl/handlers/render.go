package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ranstack/oai-du-operator/internal/duconfig"
	"github.com/ranstack/oai-du-operator/internal/fiveg"
	"github.com/ranstack/oai-du-operator/internal/manifest"
	"github.com/ranstack/oai-du-operator/internal/netutil"
	"github.com/ranstack/oai-du-operator/internal/rf"
	"github.com/ranstack/oai-du-operator/internal/util/naming"
)

// RenderOptions carries the central unit data that normally arrives over
// the F1 contract ConfigMap.
type RenderOptions struct {
	CUAddress string
	CUPort    int32
	TAC       int32
	PLMNs     []string
}

// Render produces the workload configuration for a manifest without a
// cluster and writes it to outputPath, or stdout when outputPath is empty.
func Render(manifestPath, outputPath string, opts RenderOptions) error {
	du, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	spec := du.Spec.DeepCopy()
	spec.Default()
	if err := spec.Validate(); err != nil {
		return err
	}

	provider, err := opts.provider()
	if err != nil {
		return err
	}

	center, err := rf.ParseMHz(spec.CenterFrequency)
	if err != nil {
		return fmt.Errorf("parsing center frequency: %w", err)
	}
	radio, err := rf.Derive(spec.FrequencyBand, center, spec.Bandwidth, spec.SubCarrierSpacing)
	if err != nil {
		return fmt.Errorf("deriving radio parameters: %w", err)
	}
	duAddress, err := netutil.Host(spec.F1IPAddress)
	if err != nil {
		return fmt.Errorf("parsing F1 address: %w", err)
	}

	namespace := du.Namespace
	if namespace == "" {
		namespace = "default"
	}

	plmns := make([]duconfig.PLMN, 0, len(provider.PLMNs))
	for _, p := range provider.PLMNs {
		plmns = append(plmns, duconfig.PLMN{MCC: p.MCC, MNC: p.MNC, SST: p.SST, SD: p.SD})
	}

	text := duconfig.Build(duconfig.Params{
		GNBName:        naming.GNB(namespace, du.Name),
		TAC:            provider.TAC,
		DUF1Address:    duAddress,
		DUF1Port:       spec.F1Port,
		CUF1Address:    provider.F1IPAddress,
		CUF1Port:       provider.F1Port,
		PLMNs:          plmns,
		SimulationMode: spec.SimulationMode,
		UseMimo:        spec.UseMimo,
		Radio:          radio,
	}).Render()

	if outputPath == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("Configuration written to %s\n", outputPath)
	return nil
}

// provider converts the flag values into validated F1 provider data. The
// values take the same validation path as contract data arriving from a
// real central unit.
func (o RenderOptions) provider() (*fiveg.F1ProviderData, error) {
	plmns := make([]fiveg.PLMN, 0, len(o.PLMNs))
	for _, s := range o.PLMNs {
		plmn, err := parsePLMN(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --plmn %q: %w", s, err)
		}
		plmns = append(plmns, plmn)
	}

	encoded, err := json.Marshal(plmns)
	if err != nil {
		return nil, err
	}

	provider, err := fiveg.ParseF1ProviderData(map[string]string{
		fiveg.KeyF1IPAddress: o.CUAddress,
		fiveg.KeyF1Port:      strconv.FormatInt(int64(o.CUPort), 10),
		fiveg.KeyTAC:         strconv.FormatInt(int64(o.TAC), 10),
		fiveg.KeyPLMNs:       string(encoded),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid central unit data: %w", err)
	}
	return provider, nil
}

// parsePLMN parses "mcc,mnc,sst" or "mcc,mnc,sst,sd". The slice
// differentiator accepts decimal or 0x hex.
func parsePLMN(s string) (fiveg.PLMN, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return fiveg.PLMN{}, fmt.Errorf("expected mcc,mnc,sst[,sd]")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	sst, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		return fiveg.PLMN{}, fmt.Errorf("parsing sst: %w", err)
	}

	plmn := fiveg.PLMN{MCC: parts[0], MNC: parts[1], SST: int32(sst)}
	if len(parts) == 4 {
		sd, err := strconv.ParseInt(parts[3], 0, 32)
		if err != nil {
			return fiveg.PLMN{}, fmt.Errorf("parsing sd: %w", err)
		}
		sd32 := int32(sd)
		plmn.SD = &sd32
	}

	return plmn, plmn.Validate()
}
