package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riftworks/skinforge/internal/config"
	"github.com/riftworks/skinforge/internal/tabular"
	"github.com/riftworks/skinforge/pkg/logging"
	"github.com/riftworks/skinforge/pkg/reconcile"
)

var (
	mergeOfficial   string
	mergePricing    string
	mergeOut        string
	mergeConfigPath string
	mergePolicy     string
	mergeExclusions []string
)

// mergeCmd reconciles an official snapshot against a pricing snapshot.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Reconcile two catalog snapshots into the final skin catalog",
	Long: `Merge joins the authoritative skin listing against a pricing snapshot
on normalized skin names and writes the reconciled catalog with stable
sequential skin ids.

Base skins always price at zero. Skins the pricing source never mentions
are dropped by default; pass --policy fallback to keep them at the Epic
tier's price point instead. A merge config file can set exclusions, the
policy, price points, and input column names; command-line flags win
over the file.`,
	Example: `  skinforge merge --official official.csv --pricing pricing.csv -o catalog.csv
  skinforge merge --official official.csv --pricing pricing.csv -o catalog.csv \
      --merge-config merge.yaml --policy fallback --exclude prestige`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := logging.WithStage(cmd.Context(), "merge")

		// Flag wins; scripted runs can point at a merge config through
		// the environment or the config file instead.
		if mergeConfigPath == "" {
			mergeConfigPath = config.GetString("SKINFORGE_MERGE_CONFIG")
		}

		cfg, err := config.LoadMerge(mergeConfigPath)
		if err != nil {
			return err
		}

		opts := cfg.Options()
		if len(mergeExclusions) > 0 {
			opts = append(opts, reconcile.WithExclusions(mergeExclusions))
		}
		if mergePolicy != "" {
			opts = append(opts, reconcile.WithPolicy(reconcile.Policy(mergePolicy)))
		}

		reconciler, err := reconcile.New(opts...)
		if err != nil {
			return err
		}

		official, err := tabular.ReadSkins(mergeOfficial, cfg.OfficialColumns)
		if err != nil {
			return err
		}
		pricing, err := tabular.ReadSkins(mergePricing, cfg.PricingColumns)
		if err != nil {
			return err
		}

		result, err := reconciler.Reconcile(ctx, official, pricing)
		if err != nil {
			return err
		}

		if err := tabular.WriteReconciled(mergeOut, result.Skins, overwrite); err != nil {
			return err
		}

		fmt.Print(result.Summary())
		logging.Ctx(ctx).Info().Str("path", mergeOut).Int("skins", len(result.Skins)).Msg("wrote reconciled catalog")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeOfficial, "official", "", "authoritative catalog snapshot CSV (required)")
	mergeCmd.Flags().StringVar(&mergePricing, "pricing", "", "pricing snapshot CSV (required)")
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "output CSV path (required)")
	mergeCmd.Flags().StringVar(&mergeConfigPath, "merge-config", "", "YAML merge configuration file")
	mergeCmd.Flags().StringVar(&mergePolicy, "policy", "", "unmatched skin policy: drop or fallback")
	mergeCmd.Flags().StringSliceVar(&mergeExclusions, "exclude", nil, "skin name patterns to exclude (repeatable)")

	_ = mergeCmd.MarkFlagRequired("official")
	_ = mergeCmd.MarkFlagRequired("pricing")
	_ = mergeCmd.MarkFlagRequired("out")
}
