package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/etnz/tracker/renderer"
)

// viewTableImage renders the summary table into a temporary file and opens it
// with the system's default viewer.
//
// The file is left behind since the viewer may still be loading it when this returns.
func viewTableImage(s *renderer.Summary, format renderer.Format) error {
	f, err := os.CreateTemp("", "portfolio_summary_*"+format.Ext())
	if err != nil {
		return fmt.Errorf("cannot create image file: %w", err)
	}
	if err := renderer.TableImage(f, s, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write image file: %w", err)
	}
	logger.Debug().Str("file", f.Name()).Msg("opening image viewer")
	return openFile(f.Name())
}

// openFile opens 'name' with the default application of the OS.
func openFile(name string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", name)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", name)
	default:
		cmd = exec.Command("xdg-open", name)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot start %q: %w", cmd.Path, err)
	}
	// the viewer outlives pst, it is not waited for.
	return nil
}
