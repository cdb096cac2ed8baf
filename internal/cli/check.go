package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/backmassage/muxscan/internal/check"
	"github.com/backmassage/muxscan/internal/config"
	"github.com/backmassage/muxscan/internal/logging"
)

// runCheck handles --check: validator diagnostics only, no folder needed.
func runCheck(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(true); err != nil {
		return err
	}
	log := logging.NewLogger(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if !check.RunCheck(cfg, log) {
		return errors.New("validator check failed")
	}
	return nil
}
