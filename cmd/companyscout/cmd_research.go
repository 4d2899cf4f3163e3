package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/companyscout/internal/research"
	"github.com/user/companyscout/pkg/linkup"
)

var (
	researchFormat     string
	researchProduct    string
	researchTopic      string
	researchFromDate   string
	researchToDate     string
	researchMaxResults int
)

func init() {
	researchCmd.Flags().StringVar(&researchFormat, "format", "answer", "output format: answer or structured")
	researchCmd.Flags().StringVar(&researchProduct, "product", "", "product filter (company_products)")
	researchCmd.Flags().StringVar(&researchTopic, "topic", "", "topic filter (company_news)")
	researchCmd.Flags().StringVar(&researchFromDate, "from", "", "start date YYYY-MM-DD")
	researchCmd.Flags().StringVar(&researchToDate, "to", "", "end date YYYY-MM-DD")
	researchCmd.Flags().IntVar(&researchMaxResults, "max-results", 0, "max sources to consider (tool default when 0)")
	rootCmd.AddCommand(researchCmd)
}

var researchCmd = &cobra.Command{
	Use:   "research <tool> <company>",
	Short: "Run one research tool directly against the search API",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLogging(cfg)

		if cfg.Linkup.APIKey == "" {
			return fmt.Errorf("no API key configured; set linkup.api_key or LINKUP_API_KEY")
		}

		client := linkup.New(cfg.Linkup.BaseURL)
		defer client.Close()
		dispatcher := research.NewDispatcher(client, slog.Default())

		toolArgs := map[string]any{
			"company_name":  args[1],
			"output_format": researchFormat,
		}
		if researchProduct != "" {
			toolArgs["product_name"] = researchProduct
		}
		if researchTopic != "" {
			toolArgs["topic"] = researchTopic
		}
		if researchFromDate != "" {
			toolArgs["from_date"] = researchFromDate
		}
		if researchToDate != "" {
			toolArgs["to_date"] = researchToDate
		}
		if researchMaxResults > 0 {
			toolArgs["max_results"] = researchMaxResults
		}
		raw, err := json.Marshal(toolArgs)
		if err != nil {
			return err
		}

		out, err := dispatcher.Invoke(cmd.Context(), cfg.Linkup.APIKey, args[0], raw)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, out)
		return nil
	},
}
