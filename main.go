package main

import (
	"fmt"
	"os"

	"act-wallet-tui/config"
	"act-wallet-tui/gateway"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- MAIN --------------------

// newRootCmd builds the CLI: config file, then ACTWALLET_* env, then flags
func newRootCmd() *cobra.Command {
	var (
		backendURL string
		network    string
		configPath string
		logPanel   bool
	)

	cmd := &cobra.Command{
		Use:           "act-wallet",
		Short:         "Terminal console for an ACT wallet backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ApplyEnv(config.LoadOrCreate(configPath))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("backend") {
				cfg.BackendURL = backendURL
			}
			if cmd.Flags().Changed("network") {
				cfg.Network = network
			}
			if cmd.Flags().Changed("log") {
				cfg.Logger = logPanel
			}
			if _, err := cfg.NetworkValue(); err != nil {
				return err
			}

			client, err := gateway.Dial(cfg.BackendURL)
			if err != nil {
				return err
			}
			defer client.Close()

			m := newModel(cfg, configPath, client)
			defer m.cancel()

			p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&backendURL, "backend", "", "wallet backend URL (http, ws or ipc path)")
	cmd.Flags().StringVar(&network, "network", "", "default network: Main, Local or Alpha")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to the config file")
	cmd.Flags().BoolVar(&logPanel, "log", false, "show the log panel on start")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
