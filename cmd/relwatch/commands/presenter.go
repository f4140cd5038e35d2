package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/valksor/go-relwatch"
	"github.com/valksor/go-relwatch/internal/display"
)

// presenter renders check transitions on the terminal. It implements
// relwatch.Observer; the checker drives it so the command does not forward
// state manually.
type presenter struct {
	out   io.Writer
	width int
}

func newPresenter(out io.Writer) *presenter {
	return &presenter{out: out, width: display.DefaultWidth}
}

func (p *presenter) CheckStarted(size relwatch.UISize) {
	if size.Width > 0 {
		p.width = size.Width
	}

	fmt.Fprintf(p.out, "%s Checking for updates...\n", display.Muted("→"))
}

func (p *presenter) ResultReceived(release *relwatch.ReleaseInfo, hasUpdate bool) {
	if !hasUpdate {
		fmt.Fprintf(p.out, "%s You are up to date\n", display.Success("✓"))
		return
	}

	title := release.Name
	if title == "" {
		title = release.TagName
	}

	fmt.Fprintf(p.out, "%s %s is available%s\n", display.Info("→"), display.Bold(title), preReleaseTag(release))
	if !release.PublishedAt.IsZero() {
		fmt.Fprintf(p.out, "%s\n", display.Dim("published "+release.PublishedAt.Format("2006-01-02")))
	}
	if release.Notes != "" {
		fmt.Fprintf(p.out, "\n%s\n", display.Wrap(release.Notes, p.width))
	}
	fmt.Fprintf(p.out, "\n%s %s\n", display.Muted("Release page:"), display.Cyan(release.DownloadURL))
}

func (p *presenter) ErrorReceived(err error) {
	fmt.Fprintf(p.out, "%s Update check failed: %v\n", display.Error("✗"), err)
}

// printResult is the plain rendition used when no presenter is attached.
func printResult(cmd *cobra.Command, current string, result relwatch.CheckResult) {
	out := cmd.OutOrStdout()

	if !result.HasUpdate {
		fmt.Fprintf(out, "%s Up to date (current %s)\n", display.Success("✓"), current)
		return
	}

	r := result.Release
	fmt.Fprintf(out, "%s %s is available%s (you have %s)\n",
		display.Info("→"), display.Bold(r.TagName), preReleaseTag(r), display.Muted(current))
	fmt.Fprintf(out, "%s %s\n", display.Muted("Release page:"), display.Cyan(r.DownloadURL))
}

func preReleaseTag(r *relwatch.ReleaseInfo) string {
	if r == nil || !r.PreRelease {
		return ""
	}

	return " " + display.Warning("(pre-release)")
}
