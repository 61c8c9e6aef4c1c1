// Package cmd provides the tradeinctl commands.
package cmd

import (
	"context"
	"fmt"

	"tradein_valuation/internal/config"
	"tradein_valuation/internal/domain/geo"
	"tradein_valuation/internal/infrastructure/database"
	"tradein_valuation/internal/logging"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tradeinctl",
		Short: "Operate the trade-in valuation service",
		Long: `tradeinctl prices questionnaires offline, previews order identifiers
and inspects the DynamoDB state behind the trade-in valuation service.

Examples:
  tradeinctl quote --base-price 40000 --brand samsung --answer powerOn=no
  tradeinctl region 600005
  tradeinctl order-id --postal 560001 --category phones --brand apple --seq 42
  tradeinctl counter show`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $CONFIG_FILE or configs/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newQuoteCmd(a),
		newRegionCmd(a),
		newCategoryCmd(a),
		newOrderIDCmd(a),
		newCounterCmd(a),
		newRulesCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	level := cfg.Logger.Level
	if a.verbose {
		level = "debug"
	}
	a.logger = logging.Must(logging.Config{Level: level, Format: "console", Output: "stderr"})
	return nil
}

func (a *app) regions() (*geo.RegionTable, error) {
	table, err := geo.LoadRegionTable(a.cfg.Geo.RegionsFile)
	if err != nil {
		return nil, fmt.Errorf("load region table: %w", err)
	}
	return table, nil
}

func (a *app) dynamo(ctx context.Context) (*dynamodb.Client, error) {
	return database.ConnectDynamoDB(ctx, a.cfg.DynamoDB, a.logger)
}
