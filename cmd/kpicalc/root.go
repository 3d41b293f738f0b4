package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contributorkpi/kpi"
	"contributorkpi/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// bundleFile is the on-disk layout: the user plus the activity bundle.
type bundleFile struct {
	User                  models.User `json:"user" yaml:"user"`
	models.ActivityBundle `yaml:",inline"`
}

type options struct {
	userID string
	role   string
	window string
	now    string
	format string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "kpicalc [bundle file]",
		Short: "Calculate a contributor KPI from an activity bundle",
		Long: `kpicalc reads a user and their tasks, projects, time logs, comments and documents
from a JSON or YAML file and prints the six sub-scores, the overall score and the grade.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.userID, "user", "u", "", "User ID to score (overrides the file's user.id)")
	cmd.Flags().StringVar(&opts.role, "role", "", "Role used for weighting (overrides the file's user.role)")
	cmd.Flags().StringVarP(&opts.window, "window", "w", string(kpi.Window30Days), "Time window (30days|90days|ytd)")
	cmd.Flags().StringVar(&opts.now, "now", "", "Reference time in RFC3339 (defaults to the current time)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format (text|json)")

	return cmd
}

func run(out io.Writer, path string, opts *options) error {
	window, err := kpi.ParseTimeWindow(opts.window)
	if err != nil {
		return err
	}
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("invalid format: %s. Must be 'text' or 'json'", opts.format)
	}

	file, err := loadBundle(path)
	if err != nil {
		return err
	}

	user := file.User
	if opts.userID != "" {
		user.ID = opts.userID
	}
	if opts.role != "" {
		user.Role = models.Role(opts.role)
	}
	if user.ID == "" {
		return fmt.Errorf("no user id: set user.id in the file or pass --user")
	}

	calcOpts := []kpi.Option{}
	if opts.now != "" {
		now, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		calcOpts = append(calcOpts, kpi.WithNow(now))
	}

	calc, err := kpi.NewCalculator(user, file.ActivityBundle, window, calcOpts...)
	if err != nil {
		return err
	}
	result := calc.CalculateKPI()

	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return printText(out, result)
}

func loadBundle(path string) (*bundleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading bundle: %w", err)
	}

	var file bundleFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported bundle format %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing bundle %s: %w", path, err)
	}

	return &file, nil
}

func printText(out io.Writer, r kpi.Result) error {
	role := r.Role
	if role == "" {
		role = models.RoleMember
	}
	lines := []string{
		fmt.Sprintf("User:          %s (%s)", r.UserID, role),
		fmt.Sprintf("Window:        %s", r.Window),
		fmt.Sprintf("Delivery:      %.1f", r.Delivery),
		fmt.Sprintf("Reliability:   %.1f", r.Reliability),
		fmt.Sprintf("Collaboration: %.1f", r.Collaboration),
		fmt.Sprintf("Quality:       %.1f", r.Quality),
		fmt.Sprintf("Initiative:    %.1f", r.Initiative),
		fmt.Sprintf("Efficiency:    %.1f", r.Efficiency),
		fmt.Sprintf("Overall:       %.1f (%s)", r.Overall, r.Grade),
	}
	if r.QualityOverride {
		lines = append(lines, fmt.Sprintf("Note: overall equals the quality score (%d rated documents)", r.RatedDocuments))
	}
	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}
