package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"smmhub/pkg/authz"
	"smmhub/pkg/botverify"
	"smmhub/pkg/config"
	"smmhub/pkg/db"
	"smmhub/pkg/identity"
	"smmhub/pkg/registry"
	"smmhub/pkg/server"
	"smmhub/pkg/server/endpoints"
	gormstore "smmhub/pkg/server/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return config.Get().BindAddress
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return strconv.Itoa(config.Get().Port)
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the smmhub application server",
	Long: `Run the smmhub application server.

To run the server requires the environment variables SMM_TOKEN_KEY and
DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		tokenKey, ok := os.LookupEnv("SMM_TOKEN_KEY")
		if !ok || tokenKey == "" {
			fmt.Fprintln(os.Stderr, "SMM_TOKEN_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		users := gormstore.NewUsersStore(database)
		orgs := gormstore.NewOrganizationsStore(database)
		ledger := gormstore.NewMembershipsStore(database)
		bots := gormstore.NewBotsStore(database)

		reg := registry.New(
			orgs,
			ledger,
			bots,
			authz.NewEvaluator(ledger),
			botverify.New(cfg.BotAPIBaseURL, cfg.BotVerifyTimeout()),
		)

		tokens := identity.NewTokenService([]byte(tokenKey), cfg.TokenTTL())
		hasher := identity.NewHasher(cfg.BcryptCost)

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, users, reg, tokens, hasher, cfg, host, port)

		endpoints.RegisterAll(s)

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			go func() {
				if err := config.Watch(context.Background(), nil); err != nil {
					log.Printf("config watch stopped: %v", err)
				}
			}()
		}

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}
