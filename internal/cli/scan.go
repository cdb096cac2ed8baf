package cli

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/muxscan/internal/check"
	"github.com/backmassage/muxscan/internal/config"
	"github.com/backmassage/muxscan/internal/ffmpeg"
	"github.com/backmassage/muxscan/internal/logging"
	"github.com/backmassage/muxscan/internal/report"
	"github.com/backmassage/muxscan/internal/scan"
)

// runScan validates the folder and validator, opens the transcript, and runs
// the scan. Every failure before the first file is processed is fatal.
func runScan(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(false); err != nil {
		return err
	}
	if err := cfg.ValidateFolder(); err != nil {
		return err
	}

	log := logging.NewLogger(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())

	bin, err := check.CheckDeps(cfg)
	if err != nil {
		return err
	}
	log.Debug("Validator: %s", bin)

	tee, err := report.Open(cfg.LogPath(), cmd.OutOrStdout(), cfg.ColorMode)
	if err != nil {
		return err
	}
	defer tee.Close()

	validator := ffmpeg.NewExecutor(bin)
	if cfg.Verbose {
		validator.Tee = cmd.ErrOrStderr()
	}

	runner := &scan.Runner{
		Validator: validator,
		Reporter:  tee,
		Log:       log,
		LogPath:   tee.Path(),
	}
	res, err := runner.Scan(cmd.Context(), cfg.Folder, cfg.Pattern)
	if err != nil {
		return err
	}
	if err := tee.Close(); err != nil {
		return err
	}
	if !res.OK() {
		return errBadFiles
	}
	return nil
}
