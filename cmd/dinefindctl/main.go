package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag  string
	userFlag string
	rootCmd  = &cobra.Command{
		Use:   "dinefindctl",
		Short: "CLI client for the dinefind REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "dinefind service base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID")

	// recommend subcommand
	recommendCmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend restaurants for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			data, err := doGet(fmt.Sprintf("%s/api/users/%s/recommendations", apiFlag, userFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(recommendCmd)

	// search subcommand
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search nearby restaurants and sync them into storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, _ := cmd.Flags().GetFloat64("lat")
			lon, _ := cmd.Flags().GetFloat64("lon")
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			data, err := doGet(fmt.Sprintf("%s/api/users/%s/search?lat=%f&lon=%f", apiFlag, userFlag, lat, lon))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	searchCmd.Flags().Float64("lat", 0, "Latitude (required)")
	searchCmd.Flags().Float64("lon", 0, "Longitude (required)")
	_ = searchCmd.MarkFlagRequired("lat")
	_ = searchCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
