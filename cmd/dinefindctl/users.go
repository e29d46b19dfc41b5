package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			password, _ := cmd.Flags().GetString("password")
			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")
			payload := map[string]string{
				"userId":    userFlag,
				"password":  password,
				"firstName": firstName,
				"lastName":  lastName,
			}
			data, err := doJSON("POST", fmt.Sprintf("%s/api/users", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().String("password", "", "Password (required)")
	createCmd.Flags().String("first-name", "", "First name")
	createCmd.Flags().String("last-name", "", "Last name")
	_ = createCmd.MarkFlagRequired("password")
	usersCmd.AddCommand(createCmd)
	rootCmd.AddCommand(usersCmd)

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and print the user's display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			password, _ := cmd.Flags().GetString("password")
			payload := map[string]string{"userId": userFlag, "password": password}
			data, err := doJSON("POST", fmt.Sprintf("%s/api/login", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	loginCmd.Flags().String("password", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
