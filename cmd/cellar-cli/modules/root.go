package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cellar-dev/cellar-node/internal/uriutil"
	"github.com/cellar-dev/cellar-node/misc"
	"github.com/cellar-dev/cellar-node/pkg/util/autocomplete"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global scope flags.
var (
	cfgFile  string
	endpoint string
	timeout  time.Duration

	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   misc.CLIName,
	Short: "Command line tool to work with a Cellar node",
	Long: `Cellar CLI provides all basic interactions with a Cellar storage node.

It contains commands for storing, fetching and removing objects over the
node's HTTP gateway, and simple load benchmarks for measuring how a node
behaves under concurrent traffic.`,
	Version: fmt.Sprintf("%s (build %s)", misc.Version, misc.Build),
}

var errInvalidEndpoint = errors.New("provided node endpoint is incorrect")

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/cellar-cli/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "r", "", "node HTTP endpoint (as 'http://<host>:<port>' or '<host>:<port>')")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 15*time.Second, "timeout for an operation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(autocomplete.Command(misc.CLIName))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".config/" + misc.CLIName)
	}

	viper.SetEnvPrefix(misc.Prefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		printVerbose("Using config file: %s", viper.ConfigFileUsed())
	}
}

// getEndpointURL returns the base URL of the node gateway, parsed from
// global arguments. The scheme may be omitted, plain HTTP is assumed then.
func getEndpointURL() (string, error) {
	addr := endpoint
	if addr == "" {
		addr = viper.GetString("endpoint")
	}

	hostPort, withTLS, err := uriutil.Parse(addr)
	if err != nil {
		return "", errInvalidEndpoint
	}

	scheme := "http"
	if withTLS {
		scheme = "https"
	}

	return scheme + "://" + hostPort, nil
}

func errf(errFmt string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf(errFmt, err)
}

// exitOnErr prints error and exits with code 1 if err is not nil.
func exitOnErr(cmd *cobra.Command, err error) {
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
}

// printVerbose prints to the stdout if the verbose flag is on.
func printVerbose(format string, a ...any) {
	if verbose {
		fmt.Printf(format+"\n", a...)
	}
}
