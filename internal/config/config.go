// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Delivery mode selectors for inquiry delivery.
const (
	// DeliveryServer pushes formatted inquiries through the Telegram Bot API.
	DeliveryServer = "server"
	// DeliveryHandoff hands a pre-filled t.me deep link back to the browser.
	DeliveryHandoff = "handoff"
)

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string

	// CatalogFile is the path of the JSON file holding the portfolio catalog.
	CatalogFile string

	// DatabaseDSN, when set, switches catalog persistence to PostgreSQL.
	DatabaseDSN string

	// DeliveryMode selects the inquiry delivery strategy: "server" or "handoff".
	DeliveryMode string

	// BotToken is the Telegram bot API token for server-push delivery.
	// Supplied out-of-band via TELEGRAM_BOT_TOKEN; never via flags.
	BotToken string `json:"-"`

	// ChatID is the Telegram chat the bot delivers inquiries to.
	ChatID string `json:"-"`

	// OperatorHandle is the Telegram username for handoff deep links.
	OperatorHandle string

	// AdminUser and AdminPassword form the fixed back-office credential pair.
	AdminUser     string `json:"-"`
	AdminPassword string `json:"-"`

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.CatalogFile, "f", "catalog.json", "path to catalog storage file")
	flag.StringVar(&options.DatabaseDSN, "d", "", "postgres DSN for catalog storage (optional)")
	flag.StringVar(&options.DeliveryMode, "m", DeliveryServer, "inquiry delivery mode: server | handoff")
	flag.StringVar(&options.OperatorHandle, "handle", "", "telegram handle for handoff delivery")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Address = serverAddress
	}
	if catalogFile := os.Getenv("CATALOG_FILE"); catalogFile != "" {
		options.CatalogFile = catalogFile
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if mode := os.Getenv("DELIVERY_MODE"); mode != "" {
		options.DeliveryMode = mode
	}
	if handle := os.Getenv("TELEGRAM_HANDLE"); handle != "" {
		options.OperatorHandle = handle
	}

	// Secrets come exclusively from the environment.
	options.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	options.ChatID = os.Getenv("TELEGRAM_CHAT_ID")
	options.AdminUser = os.Getenv("ADMIN_USER")
	options.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	return options
}
