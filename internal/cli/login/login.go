package login

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// confirm asks a yes/no question on the terminal
var confirm = func(message string) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &answer)
	return answer, err
}

// NewLoginCmd creates the login parent command
func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Quick login between devices",
		Long: `Quick login lets a signed-in account approve a session on another device.

A device without a session creates a code with new-quick; a signed-in
account approves that code with authorize.`,
	}

	cmd.AddCommand(newQuickCmd())
	cmd.AddCommand(newAuthorizeCmd())

	return cmd
}
