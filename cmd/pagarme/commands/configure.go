package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
)

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Configure gateway credentials",
		Long:  "Interactively configure the gateway base URL and secret key, saved to $HOME/.pagarme/config.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			_, _ = fmt.Fprint(os.Stdout, "Base URL [https://api.pagar.me]: ")

			baseURL, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading base URL: %w", err)
			}

			baseURL = strings.TrimSpace(baseURL)
			if baseURL == "" {
				baseURL = "https://api.pagar.me"
			}

			_, _ = fmt.Fprint(os.Stdout, "Secret key: ")

			secretBytes, err := term.ReadPassword(int(syscall.Stdin))

			_, _ = fmt.Fprintln(os.Stdout)

			if err != nil {
				return fmt.Errorf("reading secret key: %w", err)
			}

			return saveConfig(baseURL, strings.TrimSpace(string(secretBytes)))
		},
	}
}

func saveConfig(baseURL, secretKey string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".pagarme")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	viper.Set("api", baseURL)
	viper.Set("secret_key", secretKey)

	configPath := filepath.Join(configDir, "config.yml")

	err = viper.WriteConfigAs(configPath)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// The file holds a credential; tighten its permissions.
	err = os.Chmod(configPath, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("restricting config file permissions: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, "Configuration saved to", configPath)

	return nil
}
