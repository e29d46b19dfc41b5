package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	visitsCmd := &cobra.Command{
		Use:   "visits",
		Short: "Manage a user's visited restaurants",
	}

	addCmd := &cobra.Command{
		Use:   "add <businessId> [businessId...]",
		Short: "Mark restaurants as visited",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			payload := map[string][]string{"businessIds": args}
			data, err := doJSON("POST", fmt.Sprintf("%s/api/users/%s/visits", apiFlag, userFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	visitsCmd.AddCommand(addCmd)

	removeCmd := &cobra.Command{
		Use:   "remove <businessId> [businessId...]",
		Short: "Unmark visited restaurants",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			payload := map[string][]string{"businessIds": args}
			data, err := doJSON("DELETE", fmt.Sprintf("%s/api/users/%s/visits", apiFlag, userFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	visitsCmd.AddCommand(removeCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's visited restaurants",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			data, err := doGet(fmt.Sprintf("%s/api/users/%s/visits", apiFlag, userFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	visitsCmd.AddCommand(listCmd)

	rootCmd.AddCommand(visitsCmd)
}
