package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"roomgrid/internal/config"
	"roomgrid/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  roomgrid config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Server.BaseURL = promptValue(reader, "Reservation server URL", cfg.Server.BaseURL)
	cfg.Server.DefaultRoomID = promptInt64(reader, "Default room id", cfg.Server.DefaultRoomID)
	cfg.Server.TimeoutSeconds = promptInt(reader, "Request timeout (seconds)", cfg.Server.TimeoutSeconds)
	cfg.Identity.BaseURL = promptValue(reader, "Identity service URL", cfg.Identity.BaseURL)
	cfg.Identity.PermissionIdx = promptInt(reader, "Permission index", cfg.Identity.PermissionIdx)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[server]")
	fmt.Printf("  base_url        = %s\n", cfg.Server.BaseURL)
	fmt.Printf("  default_room_id = %d\n", cfg.Server.DefaultRoomID)
	fmt.Printf("  timeout_seconds = %d\n", cfg.Server.TimeoutSeconds)
	fmt.Println("\n[identity]")
	fmt.Printf("  base_url        = %s\n", cfg.Identity.BaseURL)
	fmt.Printf("  permission_idx  = %d\n", cfg.Identity.PermissionIdx)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme           = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		input := promptValue(reader, label, strconv.Itoa(current))
		v, err := strconv.Atoi(input)
		if err == nil {
			return v
		}
		fmt.Printf("  Not a number: %q\n", input)
	}
}

func promptInt64(reader *bufio.Reader, label string, current int64) int64 {
	for {
		input := promptValue(reader, label, strconv.FormatInt(current, 10))
		v, err := strconv.ParseInt(input, 10, 64)
		if err == nil {
			return v
		}
		fmt.Printf("  Not a number: %q\n", input)
	}
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
