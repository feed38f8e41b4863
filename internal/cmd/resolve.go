package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/renato0307/sitegrab/internal/domain"
	"github.com/renato0307/sitegrab/internal/services"
	"github.com/renato0307/sitegrab/internal/theme"
)

// ResolveCmd shows how resource URLs map into an archive without fetching anything
type ResolveCmd struct {
	PageURL      string   `arg:"" help:"URL of the page the capture would start on"`
	ResourceURLs []string `arg:"" help:"Resource URLs to resolve" optional:""`
	Format       string   `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the resolve command
func (r *ResolveCmd) Run(cli *CLI) error {
	baseURL := domain.ResolveBaseURL(r.PageURL)
	resolutions := make([]*services.PathResolution, 0, len(r.ResourceURLs))
	for _, resourceURL := range r.ResourceURLs {
		resolution, err := services.ResolvePath(nil, r.PageURL, resourceURL)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", resourceURL, err)
		}
		resolutions = append(resolutions, resolution)
	}

	if r.Format == "json" {
		output := map[string]any{
			"base_url":     baseURL,
			"archive_name": domain.ArchiveName(baseURL, domain.NewPathSanitizer(nil)),
			"resources":    resolutions,
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	fmt.Println(theme.Row("Base URL", baseURL))
	fmt.Println(theme.Row("Archive", domain.ArchiveName(baseURL, domain.NewPathSanitizer(nil))))
	for _, resolution := range resolutions {
		fmt.Println()
		fmt.Println(theme.Row("Resource", resolution.ResourceURL))
		fmt.Println(theme.Row("Relative", resolution.Normalized))
		fmt.Println(theme.Row("Path", resolution.ArchivePath))
	}
	return nil
}
