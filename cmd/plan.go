package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmarens/famsched/app"
	"github.com/kmarens/famsched/config"
	"github.com/kmarens/famsched/infra/logger"
	"github.com/kmarens/famsched/infra/metrics"
	"github.com/kmarens/famsched/pkg/export"
)

var (
	familyPath string
	format     string
	nowFlag    string
	weekFlag   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate the weekly schedules and family optimization",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&familyPath, "family", "f", "family.yaml", "family definition file")
	planCmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	planCmd.Flags().StringVar(&nowFlag, "now", "", "reference time, RFC3339 (defaults to wall clock)")
	planCmd.Flags().StringVar(&weekFlag, "week", "", "week start date, YYYY-MM-DD (defaults to next Monday)")
	rootCmd.AddCommand(planCmd)
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveTimes turns the CLI flags into the explicit reference times
// the engine requires. The wall clock is read here and nowhere else.
func resolveTimes() (now, weekStart time.Time, err error) {
	now = time.Now()
	if nowFlag != "" {
		now, err = time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --now: %w", err)
		}
	}
	if weekFlag != "" {
		weekStart, err = time.Parse("2006-01-02", weekFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --week: %w", err)
		}
		if weekStart.Weekday() != time.Monday {
			return time.Time{}, time.Time{}, fmt.Errorf("--week %s is not a Monday", weekFlag)
		}
		return now, weekStart, nil
	}
	return now, app.NextMonday(now), nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New("planner")
	if err := logger.SetGlobalLevel(cfg.Logging.Level); err != nil {
		return err
	}

	children, ingestDiags, err := config.LoadFamily(familyPath)
	if err != nil {
		return fmt.Errorf("load family: %w", err)
	}
	now, weekStart, err := resolveTimes()
	if err != nil {
		return err
	}

	planner, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	defer planner.Close()

	sink, err := metrics.NewSink(cfg.Metrics)
	if err != nil {
		return err
	}
	collector := metrics.NewCollector(planner.Bus(), sink, log)
	defer collector.Close()
	if cfg.Metrics.Prometheus.Enabled {
		go func() {
			if err := metrics.Serve(cfg.Metrics.Prometheus); err != nil {
				log.Errorf("metrics server: %v", err)
			}
		}()
	}

	plan, err := planner.PlanFamily(children, now, weekStart)
	if err != nil {
		return err
	}
	plan.Diagnostics = append(ingestDiags, plan.Diagnostics...)

	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, plan)
	case "csv":
		return export.WriteCSV(os.Stdout, plan)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
