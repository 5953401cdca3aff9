package seedgen

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hirelance/matchd/pkg/logger"
)

// ParseFlags builds a Config from command line flags.
func ParseFlags() *Config {
	cfg := NewConfig()

	flag.IntVar(&cfg.NumFreelancers, "freelancers", cfg.NumFreelancers, "number of freelancer profiles to generate")
	flag.IntVar(&cfg.NumClients, "clients", cfg.NumClients, "size of the client pool")
	flag.IntVar(&cfg.NumJobs, "jobs", cfg.NumJobs, "number of sample job postings")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (same seed, same corpus)")
	flag.StringVar(&cfg.FreelancersPath, "out", cfg.FreelancersPath, "output path for the freelancer corpus")
	flag.StringVar(&cfg.JobsPath, "jobs-out", cfg.JobsPath, "output path for sample jobs")
	flag.Parse()

	return cfg
}

// Run generates the corpus and writes it to the configured files.
func Run(ctx context.Context, cfg *Config) error {
	freelancers, jobs, stats, err := Generate(ctx, cfg)
	if err != nil {
		return err
	}

	if err := writeJSONFile(cfg.FreelancersPath, freelancers); err != nil {
		return err
	}
	if cfg.JobsPath != "" {
		if err := writeJSONFile(cfg.JobsPath, jobs); err != nil {
			return err
		}
	}

	logger.Get().Info(ctx, "wrote sample corpus",
		logger.String("freelancers", cfg.FreelancersPath),
		logger.String("jobs", cfg.JobsPath),
		logger.Int("engagements", stats.EngagementsGenerated),
	)
	return nil
}

func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
