// Bulk import of challenge and quiz YAML files.
//
// Every *.yaml / *.yml under --dir is imported with a fresh id and creation
// time. Files without a type are skipped.
//
// Usage: go run scripts/import_yaml.go --dir data/challenges

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"pretexta_backend/internal/config"
	"pretexta_backend/internal/repository"
	"pretexta_backend/internal/service"
	"pretexta_backend/pkg/database"
	"pretexta_backend/pkg/logger"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type importStats struct {
	imported int
	skipped  int
	failed   int
}

func main() {
	var (
		dir       string
		configDir string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:          "import_yaml",
		Short:        "Import challenge and quiz YAML files into the database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.InitLogger(cfg)
			defer logger.Log.Sync()

			var importer *service.ImportService
			if !dryRun {
				db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
				if err != nil {
					return fmt.Errorf("connect database: %w", err)
				}
				rdb, err := database.InitRedis(&cfg.Redis)
				if err != nil {
					logger.Log.Warn("Redis unavailable, cached lists will expire on their own", zap.Error(err))
				}
				cache := repository.NewContentCache(rdb, cfg.Redis.CacheTTL)
				content := service.NewContentService(
					repository.NewChallengeRepository(db, cache),
					repository.NewQuizRepository(db, cache),
				)
				importer = service.NewImportService(content)
			}

			stats, err := importDir(cmd, dir, importer)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nImported %d file(s), skipped %d, failed %d\n", stats.imported, stats.skipped, stats.failed)
			if stats.failed > 0 {
				return fmt.Errorf("%d file(s) failed to import", stats.failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "data", "directory to scan for YAML files")
	cmd.Flags().StringVar(&configDir, "config", "configs", "directory holding config.yaml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse files without writing to the database")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// importDir walks dir and imports each YAML file. A nil importer only parses.
func importDir(cmd *cobra.Command, dir string, importer *service.ImportService) (importStats, error) {
	var stats importStats
	out := cmd.OutOrStdout()

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if d.IsDir() || (ext != ".yaml" && ext != ".yml") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "ERROR %s: %v\n", path, err)
			stats.failed++
			return nil
		}

		req, err := service.ParseYAMLDocument(raw)
		if err != nil {
			fmt.Fprintf(out, "ERROR %s: %v\n", path, err)
			stats.failed++
			return nil
		}
		if req.Type == "" {
			fmt.Fprintf(out, "SKIP  %s: no type\n", path)
			stats.skipped++
			return nil
		}

		if importer == nil {
			fmt.Fprintf(out, "OK    %s (%s, dry run)\n", path, req.Type)
			stats.imported++
			return nil
		}

		result, err := importer.Import(req, service.ImportOptions{FreshIdentity: true})
		if err != nil {
			fmt.Fprintf(out, "ERROR %s: %v\n", path, err)
			stats.failed++
			return nil
		}
		fmt.Fprintf(out, "OK    %s (%s %s)\n", path, result.Type, result.ID)
		stats.imported++
		return nil
	})

	return stats, err
}
