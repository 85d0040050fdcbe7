package notify

import "github.com/spf13/cobra"

func NewNotifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Producer commands",
	}

	cmd.AddCommand(NewSendCommand())

	return cmd
}
