package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

var (
	flagKeysYAML     bool
	flagKeysDefaults bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings",
	Long: `Print the key bindings after loading the configuration.

With --yaml the whole effective configuration is printed, ready to be
saved as ~/.blockfall/config.yaml. With --defaults the commented
built-in configuration file is printed instead.

Examples:
  blockfall keys
  blockfall keys --config ./my-keys.yaml
  blockfall keys --yaml > ~/.blockfall/config.yaml
  blockfall keys --defaults > ./configs/blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&flagKeysYAML, "yaml", false, "Print the effective configuration as YAML")
	keysCmd.Flags().BoolVar(&flagKeysDefaults, "defaults", false, "Print the built-in configuration file")
}

func runKeys(cmd *cobra.Command, args []string) {
	if flagKeysDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg := loadConfig()

	if flagKeysYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
		return
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Key bindings")
	fmt.Println()
	fmt.Printf("  %-12s  %s\n", "Action", "Keys")
	fmt.Printf("  %-12s  %s\n", "------", "----")
	for _, a := range core.Actions() {
		keys := bindings[a]
		if len(keys) == 0 {
			fmt.Printf("  %-12s  (unbound)\n", a)
			continue
		}
		fmt.Printf("  %-12s  %s\n", a, strings.Join(keys, ", "))
	}
}
