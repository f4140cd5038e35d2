package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valksor/go-relwatch"
	"github.com/valksor/go-relwatch/internal/log"
	"github.com/valksor/go-relwatch/source/github"
	"github.com/valksor/go-relwatch/source/gitlab"
	"github.com/valksor/go-relwatch/source/httpclient"
)

var (
	checkCurrent string
	checkSource  string
	checkList    bool
	checkPre     bool
	checkSemver  bool
	checkUI      bool
	checkJSON    bool
	checkTimeout time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check <locator>",
	Short: "Check a repository for a newer release",
	Long: `Check queries the hosting provider's release API for the given repository
and reports whether a release newer than --current exists.

The locator can be a web URL, an owner/repo pair, or a git remote URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	locator, err := relwatch.ParseLocator(args[0])
	if err != nil {
		return err
	}

	src, err := buildSource()
	if err != nil {
		return err
	}

	current := checkCurrent
	if current == "" {
		current = Version
	}
	if current == "dev" || current == "none" {
		// Build-info resolution inside the checker cannot help a dev
		// binary either, so require an explicit version.
		return fmt.Errorf("no release version to compare against, pass --current")
	}

	endpoint := relwatch.EndpointLatest
	if checkList || cfg.Endpoint == "list" {
		endpoint = relwatch.EndpointList
	}

	var comparator relwatch.Comparator
	if checkSemver {
		comparator = relwatch.SemverComparator
	}

	checker := relwatch.New(src, relwatch.Options{
		CurrentVersion:    current,
		Comparator:        comparator,
		Endpoint:          endpoint,
		IncludePreRelease: checkPre,
		UISize: relwatch.UISize{
			Width:  cfg.UI.Width,
			Height: cfg.UI.Height,
		},
	})

	if checkUI {
		checker.Attach(newPresenter(cmd.OutOrStdout()))
	}

	timeout := checkTimeout
	if timeout == 0 && cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan relwatch.CheckResult, 1)
	checker.CheckAsync(ctx, locator, func(result relwatch.CheckResult) {
		done <- result
	})
	result := <-done

	saveCheckTime(locator)

	if result.Err != nil {
		return result.Err
	}

	if checkJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			HasUpdate bool                  `json:"has_update"`
			Release   *relwatch.ReleaseInfo `json:"release,omitempty"`
		}{result.HasUpdate, result.Release})
	}

	// The attached presenter already rendered the outcome.
	if checkUI {
		return nil
	}

	printResult(cmd, current, result)

	return nil
}

// buildSource constructs the release source from flags and config.
func buildSource() (relwatch.Source, error) {
	name := checkSource
	if name == "" {
		name = cfg.Source.Default
	}

	hc := httpclient.New()

	switch name {
	case "github", "":
		return github.NewSource(github.Options{
			Token:      github.ResolveToken(cfg.Source.GitHubToken),
			BaseURL:    cfg.Source.GitHubURL,
			HTTPClient: hc,
		})
	case "gitlab":
		return gitlab.NewSource(gitlab.Options{
			Token:      gitlab.ResolveToken(cfg.Source.GitLabToken),
			Host:       cfg.Source.GitLabHost,
			HTTPClient: hc,
		})
	default:
		return nil, fmt.Errorf("unknown source %q (expected github or gitlab)", name)
	}
}

// saveCheckTime records when and what we last checked.
func saveCheckTime(locator relwatch.Locator) {
	owner, repo, err := locator.Resolve()
	if err != nil {
		return
	}

	settings.LastCheck = time.Now()
	settings.LastRepo = owner + "/" + repo
	if err := settings.Save(); err != nil {
		log.Debug("save settings", log.Err(err))
	}
}

func init() {
	checkCmd.Flags().StringVarP(&checkCurrent, "current", "c", "", "Current version to compare against (default: build version)")
	checkCmd.Flags().StringVarP(&checkSource, "source", "s", "", "Release source: github or gitlab (default from config)")
	checkCmd.Flags().BoolVar(&checkList, "list", false, "Query the release collection endpoint instead of /latest")
	checkCmd.Flags().BoolVar(&checkPre, "pre", false, "Consider pre-releases when querying the release collection")
	checkCmd.Flags().BoolVar(&checkSemver, "semver", false, "Compare full semantic versions instead of leading major only")
	checkCmd.Flags().BoolVar(&checkUI, "ui", false, "Render loading and result through the terminal presenter")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the result as JSON")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 0, "Overall check timeout (default from config)")

	rootCmd.AddCommand(checkCmd)
}
