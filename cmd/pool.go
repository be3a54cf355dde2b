package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maxpoint/icontrol-go/pkg/bigip"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "manage ltm pools and their members",
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "list pools in the configured partition",
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
			res, err = cli.GetPools(cmd.Context())
		} else {
			res, err = cli.GetPoolsInPartition(cmd.Context(), partition())
		}

		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "get a pool by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetPool(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "create a pool",
	Args:  cobra.ExactArgs(1),
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
			"partition": partition(),
		}, set)

		res, err := cli.CreatePool(cmd.Context(), attrs)
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "delete a pool; deleting an absent pool is not an error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.DeletePool(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolStatsCmd = &cobra.Command{
	Use:   "stats NAME",
	Short: "get pool statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetPoolStats(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolMembersCmd = &cobra.Command{
	Use:   "members POOL",
	Short: "list the members of a pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetPoolMembers(cmd.Context(), args[0], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolAddMemberCmd = &cobra.Command{
	Use:   "add-member POOL MEMBER",
	Short: "append a member (node:port) to a pool",
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

		member := attributesFromFlags(bigip.Attributes{"name": args[1]}, set)

		res, err := cli.AddPoolMembers(cmd.Context(), args[0], []bigip.Attributes{member}, partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolRemoveMemberCmd = &cobra.Command{
	Use:   "remove-member POOL MEMBER",
	Short: "remove the first member matching the node name; the port is ignored",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.RemovePoolMember(cmd.Context(), args[0], args[1], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolEnableMemberCmd = &cobra.Command{
	Use:   "enable-member POOL MEMBER",
	Short: "enable a member (node:port, the port is required)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.EnablePoolMember(cmd.Context(), args[0], args[1], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolDisableMemberCmd = &cobra.Command{
	Use:   "disable-member POOL MEMBER",
	Short: "disable a member (node:port, the port is required)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.DisablePoolMember(cmd.Context(), args[0], args[1], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

var poolMemberStateCmd = &cobra.Command{
	Use:   "member-state POOL MEMBER",
	Short: "get one member's state (node:port, the port is required)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newBigIPClient()
		if err != nil {
			return err
		}

		res, err := cli.GetPoolMemberState(cmd.Context(), args[0], args[1], partition())
		if err != nil {
			return err
		}

		return printResource(res)
	},
}

func init() {
	rootCmd.AddCommand(poolCmd)

	poolListCmd.Flags().Bool("all", false, "list pools across all partitions")
	poolCreateCmd.Flags().StringToString("set", nil, "additional attributes as key=value")
	poolAddMemberCmd.Flags().StringToString("set", nil, "additional member attributes as key=value")

	poolCmd.AddCommand(
		poolListCmd,
		poolGetCmd,
		poolCreateCmd,
		poolDeleteCmd,
		poolStatsCmd,
		poolMembersCmd,
		poolAddMemberCmd,
		poolRemoveMemberCmd,
		poolEnableMemberCmd,
		poolDisableMemberCmd,
		poolMemberStateCmd,
	)
}
