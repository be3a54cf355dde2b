// Package cmd is our cobra/viper cli implementation
package cmd

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"go.infratographer.com/x/loggingx"
	"go.infratographer.com/x/versionx"
	"go.infratographer.com/x/viperx"

	"github.com/maxpoint/icontrol-go/internal/config"
	"github.com/maxpoint/icontrol-go/pkg/bigip"
)

const appName = "icontrol"

var clientTimeout = 30 * time.Second

var (
	cfgFile string
	logger  *zap.SugaredLogger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "cli for the F5 iControl REST API",
	Long:  `icontrol inspects and mutates BIG-IP configuration: pools, pool members, nodes and partitions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/."+appName+".yaml)")

	rootCmd.PersistentFlags().String("host", "", "BIG-IP hostname or IP (without scheme or /mgmt/tm)")
	viperx.MustBindFlag(viper.GetViper(), "bigip.host", rootCmd.PersistentFlags().Lookup("host"))

	rootCmd.PersistentFlags().String("username", "", "BIG-IP administrator user")
	viperx.MustBindFlag(viper.GetViper(), "bigip.username", rootCmd.PersistentFlags().Lookup("username"))

	rootCmd.PersistentFlags().String("password", "", "BIG-IP administrator password")
	viperx.MustBindFlag(viper.GetViper(), "bigip.password", rootCmd.PersistentFlags().Lookup("password"))

	rootCmd.PersistentFlags().String("partition", "Common", "partition to scope resources to")
	viperx.MustBindFlag(viper.GetViper(), "bigip.partition", rootCmd.PersistentFlags().Lookup("partition"))

	rootCmd.PersistentFlags().Bool("insecure", false, "skip TLS certificate verification")
	viperx.MustBindFlag(viper.GetViper(), "bigip.insecure", rootCmd.PersistentFlags().Lookup("insecure"))

	rootCmd.PersistentFlags().Bool("strict", false, "fail on any non-2xx response instead of printing the error payload")
	viperx.MustBindFlag(viper.GetViper(), "bigip.strict", rootCmd.PersistentFlags().Lookup("strict"))

	// Logging flags
	loggingx.MustViperFlags(viper.GetViper(), rootCmd.PersistentFlags())

	// Register version command
	versionx.RegisterCobraCommand(rootCmd, func() { versionx.PrintVersion(logger) })
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".icontrol" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName("." + appName)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.SetEnvPrefix(appName)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.ReadInConfig()

	setupAppConfig()

	logger = loggingx.InitLogger(appName, config.AppConfig.Logging)

	if err == nil {
		logger.Infow("using config file",
			"file", viper.ConfigFileUsed(),
		)
	}
}

// setupAppConfig loads our config.AppConfig struct with the values bound by
// viper. Then, anywhere we need these values, we can just return to AppConfig
// instead of performing viper.GetString(...), viper.GetBool(...), etc.
func setupAppConfig() {
	err := viper.Unmarshal(&config.AppConfig)
	if err != nil {
		fmt.Printf("unable to decode app config: %s", err)
		os.Exit(1)
	}
}

// newBigIPClient builds the client from the bound config. Retries and
// timeouts live in the retryable transport, not in the client itself.
func newBigIPClient() (*bigip.Client, error) {
	if err := validateMandatoryFlags(); err != nil {
		return nil, err
	}

	cfg := config.AppConfig.BigIP

	retryCli := retryablehttp.NewClient()
	retryCli.RetryMax = 3
	retryCli.HTTPClient.Timeout = clientTimeout
	retryCli.HTTPClient.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Insecure},
	}
	retryCli.Logger = nil

	opts := []bigip.Option{
		bigip.WithHTTPClient(retryCli.StandardClient()),
		bigip.WithLogger(logger),
	}

	if cfg.Strict {
		opts = append(opts, bigip.WithStrictErrors())
	}

	return bigip.NewClient(cfg.Host, cfg.Username, cfg.Password, opts...), nil
}

func validateMandatoryFlags() error {
	if config.AppConfig.BigIP.Host == "" {
		return ErrBigIPHostRequired
	}

	if config.AppConfig.BigIP.Username == "" || config.AppConfig.BigIP.Password == "" {
		return ErrBigIPCredentialsRequired
	}

	return nil
}

func partition() string {
	return config.AppConfig.BigIP.Partition
}

// printResource writes one decoded response to stdout as indented JSON.
func printResource(res bigip.Resource) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

// attributesFromFlags merges --set key=value pairs into the base attributes.
func attributesFromFlags(base bigip.Attributes, set map[string]string) bigip.Attributes {
	for k, v := range set {
		base[k] = v
	}

	return base
}
