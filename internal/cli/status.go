package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/config"
	"github.com/aryankumar/blox/internal/executor"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newStatusCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status of saved accounts",
		Long: `Show id, names, gender, premium membership, Robux balance, country
and presence for saved accounts.

Accounts are queried concurrently; a failing account does not hide the others.`,
		Example: `  # Status of the default account
  blox status

  # Status of every saved account
  blox status --all

  # Status of one account as JSON
  blox status -a alt -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show every saved account")

	return cmd
}

func runStatus(cmd *cobra.Command, all bool) error {
	logger := slog.Default()

	mgr, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}

	var accounts []config.Account
	if all {
		accounts = mgr.Accounts()
		if len(accounts) == 0 {
			return util.ErrNoAccounts
		}
	} else {
		account, err := mgr.FindAccount(viper.GetString("account"))
		if err != nil {
			return err
		}
		accounts = []config.Account{account}
	}

	pool := executor.NewPool(cmdutil.Parallel(mgr), logger)
	for _, account := range accounts {
		client := cmdutil.NewClient(mgr, account.Cookie)
		alias := account.Name

		task := executor.Task{
			Name: alias,
			Execute: func(ctx context.Context) (interface{}, error) {
				return fetchStatus(ctx, client, alias)
			},
		}
		if err := pool.Submit(task); err != nil {
			return err
		}
	}

	var results []executor.Result
	if len(accounts) > 1 && stderrIsTerminal() {
		errOut := cmd.ErrOrStderr()
		results = pool.ExecuteWithProgress(cmd.Context(), func(completed, total int) {
			fmt.Fprintf(errOut, "\rFetching accounts %d/%d", completed, total)
			if completed == total {
				fmt.Fprintln(errOut)
			}
		})
	} else {
		results = pool.Execute(cmd.Context())
	}

	for _, result := range results {
		if result.Error != nil {
			continue
		}
		if err := cmdutil.Print(cmd, mgr, present.Status(result.Data.(present.AccountStatus))); err != nil {
			return err
		}
	}

	summary := executor.Summarize(results)
	logger.Debug("fetched account status", "summary", summary.String())
	if len(accounts) > 1 {
		errOut := cmd.ErrOrStderr()
		paint := cmdutil.Colors(errOut, mgr).StatusColor(summary.Failed > 0)
		fmt.Fprintln(errOut, paint("Accounts: %s", summary))
	}

	failures := util.NewMultiError(nil)
	for _, result := range executor.Failures(results) {
		failures.Add(util.WrapAccountError(result.Name, result.Error))
	}
	return failures.ErrorOrNil()
}

// fetchStatus gathers the status of one account
func fetchStatus(ctx context.Context, client *api.Client, alias string) (present.AccountStatus, error) {
	me, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return present.AccountStatus{}, err
	}

	status := present.AccountStatus{Alias: alias}

	if status.User, err = client.User(ctx, me.ID); err != nil {
		return status, err
	}
	if status.Gender, err = client.Gender(ctx); err != nil {
		return status, err
	}
	if status.Premium, err = client.IsPremium(ctx, me.ID); err != nil {
		return status, err
	}
	if status.Robux, err = client.Robux(ctx); err != nil {
		return status, err
	}
	if status.Country, err = client.CountryCode(ctx); err != nil {
		return status, err
	}
	if status.Presence, err = client.Presence(ctx, me.ID); err != nil {
		return status, err
	}

	return status, nil
}
