package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/budget-buzz/internal/auth"
	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/tui"
)

func newAuthManager(ctx context.Context, a *app) (*auth.Manager, error) {
	return auth.NewManager(ctx, a.kv, auth.WithDelay(viper.GetDuration("auth.delay")))
}

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign up or sign out",
		Long: `Manage the account shown on the dashboard. Accounts are local to this
machine and passwords are never checked.`,
	}

	cmd.AddCommand(signInCmd())
	cmd.AddCommand(signUpCmd())
	cmd.AddCommand(signOutCmd())
	cmd.AddCommand(whoamiCmd())

	return cmd
}

// promptMissing asks for every empty value in order.
func promptMissing(ctx context.Context, p *cli.Prompter, fields []*string, labels []string) error {
	for i, field := range fields {
		if *field != "" {
			continue
		}
		answer, err := p.Ask(ctx, labels[i], "")
		if err != nil {
			return err
		}
		*field = answer
	}
	return nil
}

func signInCmd() *cobra.Command {
	var form auth.LoginForm

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			prompter := cli.NewCLIPrompter(a.in, a.out)
			if err := promptMissing(ctx, prompter,
				[]*string{&form.Email, &form.Password},
				[]string{"Email", "Password"}); err != nil {
				return err
			}
			if err := form.Validate(); err != nil {
				return err
			}

			manager, err := newAuthManager(ctx, a)
			if err != nil {
				return err
			}
			user, err := tui.RunWithSpinner(ctx, a.out, "Signing in...", func(ctx context.Context) (model.User, error) {
				return manager.SignIn(ctx, form.Email, form.Password)
			})
			if err != nil {
				return fmt.Errorf("sign in failed: %w", err)
			}

			a.println(cli.FormatSuccess(fmt.Sprintf("Signed in as %s (%s)", user.FullName, user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "account password")

	return cmd
}

func signUpCmd() *cobra.Command {
	var form auth.SignUpForm

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			prompter := cli.NewCLIPrompter(a.in, a.out)
			if err := promptMissing(ctx, prompter,
				[]*string{&form.FullName, &form.Email, &form.Password, &form.ConfirmPassword},
				[]string{"Full name", "Email", "Password", "Confirm password"}); err != nil {
				return err
			}
			if err := form.Validate(); err != nil {
				return err
			}

			manager, err := newAuthManager(ctx, a)
			if err != nil {
				return err
			}
			user, err := tui.RunWithSpinner(ctx, a.out, "Creating account...", func(ctx context.Context) (model.User, error) {
				return manager.SignUp(ctx, form.Email, form.Password, form.FullName)
			})
			if err != nil {
				return fmt.Errorf("sign up failed: %w", err)
			}

			a.println(cli.FormatSuccess(fmt.Sprintf("Welcome, %s!", user.FullName)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.FullName, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "password (8+ characters, one uppercase letter and one number)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "password again")

	return cmd
}

func signOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			manager, err := newAuthManager(ctx, a)
			if err != nil {
				return err
			}
			if !manager.IsAuthenticated() {
				a.println(cli.InfoStyle.Render("Not signed in."))
				return nil
			}
			if err := manager.SignOut(ctx); err != nil {
				return fmt.Errorf("sign out failed: %w", err)
			}
			a.println(cli.FormatSuccess("Signed out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			manager, err := newAuthManager(cmd.Context(), a)
			if err != nil {
				return err
			}
			user, ok := manager.Current()
			if !ok {
				a.println(cli.InfoStyle.Render("Not signed in. Use 'buzz auth signin' to sign in."))
				return nil
			}
			a.printf("%s <%s>\n%s\n", cli.BoldStyle.Render(user.FullName), user.Email, cli.SubtleStyle.Render("ID: "+user.ID))
			return nil
		},
	}
}
