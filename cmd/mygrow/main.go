package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"mygrow-go/internal/app"
	"mygrow-go/internal/config"
	"mygrow-go/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a MyGrowApp. The caller must defer
// a.Close(). operation identifies the CLI command being run (e.g. "Write").
func newApp(operation string) (*app.MyGrowApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewMyGrowApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// unlockIfNeeded prompts for the passphrase and unlocks the store when
// encryption is enabled. Every command needs this, including write: an
// append reads the existing archive before writing it back, and a locked
// store refuses that read.
func unlockIfNeeded(a *app.MyGrowApp) error {
	if !a.EncryptionEnabled() {
		return nil
	}
	passphrase, err := readPassphrase("Passphrase: ")
	if err != nil {
		return err
	}
	return a.Unlock(passphrase)
}

// readPassphrase prompts on stderr and reads a passphrase without echo.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(raw), nil
}

func userFlag(cmd *cobra.Command) string {
	user, _ := cmd.Flags().GetString("user")
	return user
}

var rootCmd = &cobra.Command{
	Use:   "mygrow",
	Short: "Personal spiritual journaling archive",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		user, _ := cmd.Flags().GetString("user")
		if user == "" {
			user = "default"
		}

		cfg := config.NewConfig(user, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Default User: %s\n", user)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Default User: %s\n", cfg.DefaultUser)
		fmt.Printf("Base Dir:     %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:      %s\n", cfg.LogDir)
		fmt.Printf("Store:        %s\n", cfg.Store.Type)
		fmt.Printf("Encryption:   %t\n", cfg.Encryption.Enabled)
		return nil
	},
}

// write command
var writeCmd = &cobra.Command{
	Use:   "write [TEXT]",
	Short: "Write a journal entry",
	Long:  "Write a journal entry. Reads the entry text from the arguments, or from stdin when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading journal text: %w", err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("journal text is empty")
		}

		a, err := newApp("Write")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		entry, err := a.Write(context.Background(), userFlag(cmd), text)
		if err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}

		fmt.Printf("Entry %s recorded (%d words)\n", entry.ID, entry.WordCount)
		for _, t := range entry.Themes {
			fmt.Printf("  theme: %s\n", t)
		}
		return nil
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("Entries")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		entries := a.Entries(userFlag(cmd), limit)
		if len(entries) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s  %4d words  %s\n",
				e.ID, e.Date, e.WordCount, strings.Join(e.Themes, ", "))
		}
		return nil
	},
}

// months command
var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List months with entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Months")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		months := a.Months(userFlag(cmd))
		if len(months) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}
		for _, m := range months {
			fmt.Println(m)
		}
		return nil
	},
}

// summary command
var summaryCmd = &cobra.Command{
	Use:   "summary [MONTH]",
	Short: "View a monthly summary (YYYY-MM)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("MonthlySummary")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		user := userFlag(cmd)
		if len(args) == 1 {
			printSummary(a.MonthlySummary(user, args[0]))
			return nil
		}

		summaries := a.MonthlySummaries(user)
		if len(summaries) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}
		for _, s := range summaries {
			printSummary(s)
			fmt.Println()
		}
		return nil
	},
}

// insights command
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "View lifetime insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SummaryInsights")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		insights := a.SummaryInsights(userFlag(cmd))
		fmt.Printf("Entries: %d\n\n", insights.TotalEntries)
		for _, line := range insights.Insights {
			fmt.Printf("- %s\n", line)
		}
		fmt.Printf("\nNext: %s\n", insights.NextSuggestion)
		return nil
	},
}

// timeline command
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "View the growth milestone timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("Timeline")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		events := a.Timeline(userFlag(cmd), limit)
		if len(events) == 0 {
			fmt.Println("No milestones yet.")
			return nil
		}

		// Most recent first for display.
		for i := len(events) - 1; i >= 0; i-- {
			e := events[i]
			fmt.Printf("%s  %-20s  %s\n",
				e.Timestamp.Format("2006-01-02"), e.Type, e.Description)
		}
		return nil
	},
}

// search command
var searchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "Search entries by text, theme, or emotion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Search")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		entries := a.Search(userFlag(cmd), args[0])
		if len(entries) == 0 {
			fmt.Println("No matching entries.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  %s\n", e.ID, e.Date, firstLine(e.JournalText, 60))
		}
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full growth report as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportReport")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := unlockIfNeeded(a); err != nil {
			return err
		}

		report := a.ExportReport(userFlag(cmd))
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

// encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Manage at-rest encryption",
}

var encryptInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate an encryption key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetupEncryption")
		if err != nil {
			return err
		}
		defer a.Close()

		passphrase, err := readPassphrase("New passphrase: ")
		if err != nil {
			return err
		}
		confirm, err := readPassphrase("Confirm passphrase: ")
		if err != nil {
			return err
		}
		if passphrase != confirm {
			return fmt.Errorf("passphrases do not match")
		}

		if err := a.SetupEncryption(passphrase); err != nil {
			return fmt.Errorf("setting up encryption: %w", err)
		}

		fmt.Println("Encryption keys generated. Set encryption.enabled = true in the config to activate.")
		return nil
	},
}

func printSummary(s model.MonthlySummary) {
	fmt.Printf("%s: %d entries, %d avg words, %d unique scriptures\n",
		s.Month, s.EntryCount, s.AverageWords, s.UniqueScriptures)
	for _, t := range s.TopThemes {
		fmt.Printf("  theme: %s (%d)\n", t.Label, t.Count)
	}
	for _, e := range s.TopEmotions {
		fmt.Printf("  emotion: %s (%d)\n", e.Label, e.Count)
	}
}

func firstLine(text string, max int) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if len(text) > max {
		text = text[:max] + "..."
	}
	return text
}

func init() {
	rootCmd.PersistentFlags().StringP("user", "u", "", "User identity (defaults to config default_user)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntP("limit", "n", 20, "Maximum number of entries to show")
	rootCmd.AddCommand(monthsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().IntP("limit", "n", 20, "Maximum number of milestones to show")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.AddCommand(encryptInitCmd)
}
