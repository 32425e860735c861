package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/verseworks/poem-service/client"
)

func init() {
	var userName, password string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials against the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := apiclient.New(apiFlag)
			name, err := c.Login(cmd.Context(), userName, password)
			if err != nil {
				return err
			}
			// Round-trip through /me to prove the issued session works.
			me, err := c.Me(cmd.Context())
			if err != nil {
				return err
			}
			if me != name {
				return fmt.Errorf("session mismatch: logged in as %q, /me reports %q", name, me)
			}
			_, _ = fmt.Fprintf(os.Stdout, "logged in as %s\n", name)
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&userName, "user", "u", "", "User name (required)")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("user")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := apiclient.New(apiFlag).Register(cmd.Context(), userName, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stdout, "registered %s\n", name)
			return nil
		},
	}
	registerCmd.Flags().StringVarP(&userName, "user", "u", "", "User name (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = registerCmd.MarkFlagRequired("user")
	_ = registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)
}
