package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"share-picture/blockchains/clientinterfaces"
	"share-picture/blockchains/types"
	"share-picture/contracts/fabric/sharepicture"
	"share-picture/core"
	"share-picture/core/configs"
	"share-picture/core/configs/parsers"
	"share-picture/core/configs/validators"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newGateway builds the ledger backend, replaced in tests
var newGateway = func(c *configs.ClientConfig) core.Gateway {
	return clientinterfaces.NewFabricGateway(c.Discovery.AsLocalhost, c.Timeout)
}

// cli holds what every command needs: the flag/env lookup and the output streams
type cli struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out, errOut: errOut}

	// For environment variables.
	c.v.SetEnvPrefix(CmdRoot)
	c.v.AutomaticEnv()
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	root := &cobra.Command{
		Use:           CmdRoot,
		Short:         "Query pictures shared on the Fabric network.",
		Long:          `Evaluate read-only transactions of the sp-logic contract through the Fabric gateway.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			prepareLogger(c.v.GetBool("verbose"))
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "Specifies the YAML client config file to load defaults from")
	flags.StringP("profile", "p", "", "Sets the connection profile path (required unless set in the config file)")
	flags.StringP("wallet", "w", configs.DefaultWalletPath, "Sets the file system wallet path")
	flags.StringP("identity", "i", configs.DefaultIdentity, "Sets the label of the identity to connect with")
	flags.String("channel", configs.DefaultChannel, "Sets the channel the contract is deployed to")
	flags.String("contract", configs.DefaultContract, "Sets the contract name")
	flags.Duration("timeout", configs.DefaultTimeout, "Sets the gateway timeout")
	flags.Bool("as-localhost", true, "Rewrites discovered peer addresses to localhost")
	flags.Bool("pretty", false, "Decodes pictures and prints them as a table")
	flags.BoolP("verbose", "v", false, "Enables debug logging")
	_ = c.v.BindPFlags(flags)

	root.AddCommand(c.queryCmd())
	root.AddCommand(c.queryAllCmd())
	root.AddCommand(c.verifyCmd())
	root.AddCommand(c.walletCmd())

	return root
}

// settings merges, by increasing priority, the defaults, the config file,
// the SHAREPICTURE_* environment and the command line flags
func (c *cli) settings() (*configs.ClientConfig, error) {
	var err error

	conf := configs.DefaultClientConfig()
	if path := c.v.GetString("config"); path != "" {
		conf, err = parsers.ParseClientConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if c.v.IsSet("profile") {
		conf.ProfilePath = c.v.GetString("profile")
	}
	if c.v.IsSet("wallet") {
		conf.WalletPath = c.v.GetString("wallet")
	}
	if c.v.IsSet("identity") {
		conf.Identity = c.v.GetString("identity")
	}
	if c.v.IsSet("channel") {
		conf.Channel = c.v.GetString("channel")
	}
	if c.v.IsSet("contract") {
		conf.Contract = c.v.GetString("contract")
	}
	if c.v.IsSet("timeout") {
		conf.Timeout = c.v.GetDuration("timeout")
	}
	if c.v.IsSet("as-localhost") {
		conf.Discovery.AsLocalhost = c.v.GetBool("as-localhost")
	}

	if ok, err := validators.ValidateClientConfig(conf); !ok {
		return nil, err
	}

	zap.L().Debug("client settings",
		zap.String("profile", conf.ProfilePath),
		zap.String("wallet", conf.WalletPath),
		zap.String("identity", conf.Identity),
		zap.String("channel", conf.Channel),
		zap.String("contract", conf.Contract))

	return conf, nil
}

func (c *cli) client(conf *configs.ClientConfig) *core.QueryClient {
	return core.NewQueryClient(newGateway(conf), core.NewZapLogger(zap.L(), "query"))
}

// configError reports an unusable client configuration like a query that
// failed to load its configuration
func configError(err error) error {
	return &core.QueryError{Phase: core.PhaseConfig, Kind: core.ErrConfigLoad, Err: err}
}

// walletPath resolves the wallet without requiring the rest of the settings
func (c *cli) walletPath() (string, error) {
	if c.v.IsSet("wallet") {
		return c.v.GetString("wallet"), nil
	}

	if path := c.v.GetString("config"); path != "" {
		conf, err := parsers.ParseClientConfig(path)
		if err != nil {
			return "", err
		}
		return conf.WalletPath, nil
	}

	return configs.DefaultWalletPath, nil
}

// fail reports the error the same way for every command
func (c *cli) fail(action string, err error) error {
	fmt.Fprintf(c.errOut, "Failed to %s: %s\n", action, err)
	return err
}

func (c *cli) evaluate(build func(conf *configs.ClientConfig) types.QueryRequest) error {
	conf, err := c.settings()
	if err != nil {
		return c.fail("evaluate transaction", configError(err))
	}

	request := build(conf)

	result, err := c.client(conf).Query(conf.ProfilePath, conf.WalletPath, conf.Identity, request)
	if err != nil {
		return c.fail("evaluate transaction", err)
	}

	return c.print(request, result)
}

func (c *cli) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <pictureID>",
		Short: "Evaluate queryPicture for one picture.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.evaluate(func(conf *configs.ClientConfig) types.QueryRequest {
				return types.QueryPicture(conf.Channel, conf.Contract, args[0])
			})
		},
	}
}

func (c *cli) queryAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query-all",
		Short: "Evaluate queryAllPictures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.evaluate(func(conf *configs.ClientConfig) types.QueryRequest {
				return types.QueryAllPictures(conf.Channel, conf.Contract)
			})
		},
	}
}

func (c *cli) verifyCmd() *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "verify [pictureID]",
		Short: "Evaluate the same query several times and check the results are identical.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := c.settings()
			if err != nil {
				return c.fail("verify transaction", configError(err))
			}

			request := types.QueryAllPictures(conf.Channel, conf.Contract)
			if len(args) == 1 {
				request = types.QueryPicture(conf.Channel, conf.Contract, args[0])
			}

			_, digest, err := c.client(conf).Verify(conf.ProfilePath, conf.WalletPath, conf.Identity, request, rounds)
			if err != nil {
				return c.fail("verify transaction", err)
			}

			fmt.Fprintf(c.out, "%d evaluations of %s returned identical results, sha3-256: %s\n",
				rounds, request.Transaction, digest)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rounds, "rounds", "n", 3, "Sets the number of evaluations to compare")

	return cmd
}

func (c *cli) walletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "List the identities stored in the wallet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			walletPath, err := c.walletPath()
			if err != nil {
				return c.fail("list wallet", configError(err))
			}

			users, err := core.NewQueryClient(newGateway(configs.DefaultClientConfig()), nil).Identities(walletPath)
			if err != nil {
				return c.fail("list wallet", err)
			}

			fmt.Fprintf(c.out, "Wallet path: %s\n", walletPath)
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tMSP")
			for _, user := range users {
				fmt.Fprintf(w, "%s\t%s\n", user.Label, user.MspID)
			}
			return w.Flush()
		},
	}
}

// print writes the result as-is, or decoded as pictures with --pretty
func (c *cli) print(request types.QueryRequest, result core.QueryResult) error {
	if !c.v.GetBool("pretty") {
		fmt.Fprintf(c.out, "Transaction has been evaluated, result is: %s\n", result)
		return nil
	}

	var rows []sharepicture.QueryResult

	switch request.Transaction {
	case types.TxQueryPicture:
		picture, err := sharepicture.DecodePicture(result)
		if err != nil {
			return c.fail("decode result", err)
		}
		rows = []sharepicture.QueryResult{{Key: request.Args[0], Record: picture}}
	default:
		pictures, err := sharepicture.DecodePictures(result)
		if err != nil {
			return c.fail("decode result", err)
		}
		rows = pictures
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tMAKE\tCATEGORY\tSUBCATEGORY\tOWNER")
	for _, row := range rows {
		if row.Record == nil {
			row.Record = &sharepicture.Picture{}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Key, row.Record.Make, row.Record.Category,
			row.Record.Subcategory, row.Record.Owner)
	}
	return w.Flush()
}
