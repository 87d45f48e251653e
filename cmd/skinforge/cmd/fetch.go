package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/riftworks/skinforge/internal/sources/cdragon"
	"github.com/riftworks/skinforge/internal/sources/ddragon"
	"github.com/riftworks/skinforge/internal/sources/wiki"
	"github.com/riftworks/skinforge/internal/tabular"
	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/logging"
)

var (
	fetchOut        string
	ddragonVersion  string
	ddragonBaseURL  string
	cdragonEndpoint string
	wikiPage        string
)

// fetchCmd represents the parent fetch command.
var fetchCmd = &cobra.Command{
	Use:   "fetch [source]",
	Short: "Download a skin catalog snapshot from a public source",
	Long: `Fetch downloads skin data from one public source and writes it as a
CSV snapshot in the canonical schema.

Snapshots from different sources disagree on names, tiers, and prices;
run "skinforge merge" afterwards to reconcile two of them into the
final catalog.`,
	Example: `  skinforge fetch ddragon -o official.csv
  skinforge fetch wiki -o pricing.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// fetchDdragonCmd downloads the official catalog from Data Dragon.
var fetchDdragonCmd = &cobra.Command{
	Use:   "ddragon",
	Short: "Fetch the official skin catalog from Riot's Data Dragon CDN",
	Long: `Fetch the authoritative champion and skin listing from Data Dragon.

Data Dragon carries no price information; its snapshot is the left side
of a merge and supplies champion ids and skin numbers.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := logging.WithSource(cmd.Context(), "ddragon")

		opts := []ddragon.Option{}
		if ddragonBaseURL != "" {
			opts = append(opts, ddragon.WithBaseURL(ddragonBaseURL))
		}
		skins, err := ddragon.NewClient(opts...).AllSkins(ctx, ddragonVersion)
		if err != nil {
			return err
		}
		return writeSnapshot(ctx, fetchOut, skins)
	},
}

// fetchCdragonCmd downloads the catalog from CommunityDragon.
var fetchCdragonCmd = &cobra.Command{
	Use:   "cdragon",
	Short: "Fetch the skin catalog from CommunityDragon",
	Long: `Fetch the community-maintained skin listing from CommunityDragon.

CommunityDragon exposes rarity metadata but not prices; tiers are taken
from its rarity fields and prices filled with each tier's representative
price point.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := logging.WithSource(cmd.Context(), "cdragon")

		opts := []cdragon.Option{}
		if cdragonEndpoint != "" {
			opts = append(opts, cdragon.WithURL(cdragonEndpoint))
		}
		skins, err := cdragon.NewClient(opts...).Skins(ctx)
		if err != nil {
			return err
		}
		return writeSnapshot(ctx, fetchOut, skins)
	},
}

// fetchWikiCmd scrapes skin prices from the community wiki.
var fetchWikiCmd = &cobra.Command{
	Use:   "wiki",
	Short: "Scrape skin prices from the community wiki's SkinData module",
	Long: `Scrape the community wiki's Lua SkinData module, the only public
source that records RP prices per skin.

The scraped snapshot is the pricing side of a merge. Skin names on the
wiki differ from the official catalog in casing, punctuation, and
diacritics; the merge join normalizes both sides.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := logging.WithSource(cmd.Context(), "wiki")

		opts := []wiki.Option{}
		if wikiPage != "" {
			opts = append(opts, wiki.WithURL(wikiPage))
		}
		lua, err := wiki.NewClient(opts...).FetchLua(ctx)
		if err != nil {
			return err
		}
		skins, err := wiki.ParseLua(lua, catalog.DefaultPriceTable())
		if err != nil {
			return err
		}
		return writeSnapshot(ctx, fetchOut, skins)
	},
}

// writeSnapshot persists fetched records and logs the row count.
func writeSnapshot(ctx context.Context, path string, skins []catalog.SkinRecord) error {
	if err := tabular.WriteSkins(path, skins, overwrite); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Int("skins", len(skins)).Str("path", path).Msg("wrote snapshot")
	return nil
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.PersistentFlags().StringVarP(&fetchOut, "out", "o", "", "output CSV path (required)")
	_ = fetchCmd.MarkPersistentFlagRequired("out")

	fetchDdragonCmd.Flags().StringVar(&ddragonVersion, "game-version", "", "game data version (default: latest)")
	fetchDdragonCmd.Flags().StringVar(&ddragonBaseURL, "base-url", "", "override the Data Dragon endpoint")
	fetchCdragonCmd.Flags().StringVar(&cdragonEndpoint, "url", "", "override the CommunityDragon endpoint")
	fetchWikiCmd.Flags().StringVar(&wikiPage, "url", "", "override the wiki page URL")

	fetchCmd.AddCommand(fetchDdragonCmd, fetchCdragonCmd, fetchWikiCmd)
}
