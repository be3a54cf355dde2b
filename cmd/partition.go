package cmd

import (
	"github.com/spf13/cobra"
)

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "manage administrative folders",
}

var partitionListCmd = &cobra.Command{
	Use:   "list",
	Short: "list all folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetPartitions(cmd.Context())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var partitionGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "get a folder by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetPartition(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var partitionCreateCmd = &cobra.Command{
	Use:   "create PATH",
	Short: "create a folder; PATH must be a full path such as /Test or /Test/Nested",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.CreatePartition(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var partitionDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "delete a folder; deleting an absent folder is not an error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.DeletePartition(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

func init() {
	rootCmd.AddCommand(partitionCmd)

	partitionCmd.AddCommand(
		partitionListCmd,
		partitionGetCmd,
		partitionCreateCmd,
		partitionDeleteCmd,
	)
}
