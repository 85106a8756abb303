package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/matheqs/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update matheqs to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checkOnly, _ := cmd.Flags().GetBool("check")
		target, _ := cmd.Flags().GetString("version")

		// Release archives take longer than an API round trip.
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(5 * time.Minute))

		if checkOnly {
			result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s → %s\nRun \"matheqs update\" to install it.\n",
					result.CurrentVersion, result.LatestVersion)
			} else {
				fmt.Printf("matheqs %s is up to date.\n", result.CurrentVersion)
			}
			return nil
		}

		err := checker.Update(cmd.Context(), &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})
		switch {
		case errors.Is(err, selfupdate.ErrDevBuild):
			return errors.New("this is a development build; install releases from GitHub instead")
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Printf("matheqs %s is up to date.\n", version)
			return nil
		case err != nil && errors.Is(err, os.ErrPermission):
			return fmt.Errorf("%w\nThe binary location is not writable; try \"sudo matheqs update\"", err)
		case err != nil:
			return err
		}

		fmt.Println("✓ Update installed. Run \"matheqs version\" to confirm.")
		return nil
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether a newer release exists")
	updateCmd.Flags().String("version", "", "Install a specific release tag instead of the latest")
}
