package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maxpoint/icontrol-go/pkg/bigip"
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "manage ltm nodes",
}

var nodeListCmd = &cobra.Command{
	Use:   "list",
	Short: "list nodes in the configured partition",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		var res bigip.Resource
		if all {
			res, err = cli.GetNodes(cmd.Context())
		} else {
			res, err = cli.GetNodesInPartition(cmd.Context(), partition())
		}

		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var nodeGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "get a node by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetNode(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var nodeCreateCmd = &cobra.Command{
	Use:   "create NAME ADDRESS",
	Short: "create a node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		set, err := cmd.Flags().GetStringToString("set")
		if err != nil {
			return err
		}

		attrs := attributesFromFlags(bigip.Attributes{
			"name":      args[0],
			"address":   args[1],
			"partition": partition(),
		}, set)

		res, err := cli.CreateNode(cmd.Context(), attrs)
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var nodeDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "delete a node; deleting an absent node is not an error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.DeleteNode(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var nodeStatsCmd = &cobra.Command{
	Use:   "stats NAME",
	Short: "get node statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetNodeStats(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var nodeEnableCmd = &cobra.Command{
	Use:   "enable NAME",
	Short: "set a node's session to user-enabled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.EnableNode(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var nodeDisableCmd = &cobra.Command{
	Use:   "disable NAME",
	Short: "set a node's session to user-disabled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.DisableNode(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

func init() {
	rootCmd.AddCommand(nodeCmd)

	nodeListCmd.Flags().Bool("all", false, "list nodes across all partitions")
	nodeCreateCmd.Flags().StringToString("set", nil, "additional attributes as key=value")

	nodeCmd.AddCommand(
		nodeListCmd,
		nodeGetCmd,
		nodeCreateCmd,
		nodeDeleteCmd,
		nodeStatsCmd,
		nodeEnableCmd,
		nodeDisableCmd,
	)
}
