package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roadprep/roadprep/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your RoadPrep account",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		reader := bufio.NewReader(os.Stdin)

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			fmt.Print("Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")

		if err := svc.accounts.Login(cmd.Context(), email, password); err != nil {
			var unauth *api.ErrUnauthorized
			if errors.As(err, &unauth) {
				return errors.New("invalid email or password")
			}
			return err
		}

		viewer, err := svc.accounts.Resolve(cmd.Context())
		if err != nil {
			return err
		}
		if plan := viewer.PlanName(); plan != "" {
			fmt.Printf("Signed in. Plan: %s\n", plan)
		} else {
			fmt.Println("Signed in.")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Account email (prompted when omitted)")
}
