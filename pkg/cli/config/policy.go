package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/service/policy"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/utils/logging"
)

// Policy holds CLI flags for permission policy configuration
type Policy struct {
	path string
}

// Flags returns CLI flags for policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "Permission policy file (TOML). Empty uses the built-in matrix",
			Category:    "Policy",
			Sources:     cli.EnvVars("VWS_POLICY_FILE"),
			Destination: &p.path,
		},
	}
}

// Path returns the configured policy file path
func (p *Policy) Path() string {
	return p.path
}

// Configure loads the permission matrix from the policy file, or the
// built-in default when no file is configured.
func (p *Policy) Configure() (policy.Oracle, error) {
	if p.path == "" {
		logging.Default().Info("Using built-in permission matrix")
		return policy.Default(), nil
	}

	m, err := policy.LoadFile(p.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load policy file", goerr.V("path", p.path))
	}
	logging.Default().Info("Loaded permission policy", "path", p.path)
	return m, nil
}
