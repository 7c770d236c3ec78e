// Package logforward renders the configuration for the log forwarding
// sidecar that ships DU workload logs to a Loki push endpoint.
package logforward

import (
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"
)

// EndpointKey is the ConfigMap key under which the logging endpoint URL is
// published.
const EndpointKey = "url"

// ListenPort serves the sidecar's readiness endpoint.
const ListenPort = 9080

// The sidecar tails the container runtime's log files for the workload
// container of its own pod. The placeholders expand from downward API
// environment variables, the sidecar runs with -config.expand-env.
const podLogGlob = "/var/log/pods/${POD_NAMESPACE}_${POD_NAME}_${POD_UID}/du/*.log"

type promtailConfig struct {
	Server        serverConfig    `yaml:"server"`
	Positions     positionsConfig `yaml:"positions"`
	Clients       []clientConfig  `yaml:"clients"`
	ScrapeConfigs []scrapeConfig  `yaml:"scrape_configs"`
}

type serverConfig struct {
	HTTPListenPort int `yaml:"http_listen_port"`
	GRPCListenPort int `yaml:"grpc_listen_port"`
}

type positionsConfig struct {
	Filename string `yaml:"filename"`
}

type clientConfig struct {
	URL string `yaml:"url"`
}

type scrapeConfig struct {
	JobName       string         `yaml:"job_name"`
	StaticConfigs []staticConfig `yaml:"static_configs"`
}

type staticConfig struct {
	Targets []string     `yaml:"targets"`
	Labels  staticLabels `yaml:"labels"`
}

type staticLabels struct {
	Job      string `yaml:"job"`
	Instance string `yaml:"instance"`
	Path     string `yaml:"__path__"`
}

// Render produces the sidecar configuration for one DU instance shipping to
// the given Loki push URL. Output is deterministic for equal inputs.
func Render(pushURL, instance string) (string, error) {
	parsed, err := url.Parse(pushURL)
	if err != nil {
		return "", fmt.Errorf("parsing push url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("push url %q must be absolute", pushURL)
	}

	cfg := promtailConfig{
		Server:    serverConfig{HTTPListenPort: ListenPort, GRPCListenPort: 0},
		Positions: positionsConfig{Filename: "/tmp/positions.yaml"},
		Clients:   []clientConfig{{URL: pushURL}},
		ScrapeConfigs: []scrapeConfig{
			{
				JobName: "du",
				StaticConfigs: []staticConfig{
					{
						Targets: []string{"localhost"},
						Labels: staticLabels{
							Job:      "oai-ran-du",
							Instance: instance,
							Path:     podLogGlob,
						},
					},
				},
			},
		},
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return string(out), nil
}
