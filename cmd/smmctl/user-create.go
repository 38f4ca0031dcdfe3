package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smmhub/pkg/config"
	"smmhub/pkg/db"
	"smmhub/pkg/identity"
	"smmhub/pkg/server/store"
	gormstore "smmhub/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	Long: `Create an account directly in the database.

The password is hashed before storage. Creation fails if the login is
already taken.

Example:
  smmctl user create --login alice --name Alice --password secret
  smmctl user create --login root --name Root --password secret --admin`,
	Run: func(cmd *cobra.Command, args []string) {
		login, _ := cmd.Flags().GetString("login")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		admin, _ := cmd.Flags().GetBool("admin")

		if login == "" || name == "" || password == "" {
			fmt.Fprintln(os.Stderr, "--login, --name, and --password are required")
			os.Exit(1)
		}

		user, err := createUser(login, name, password, admin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s'\n", login)
		fmt.Printf("User ID: %d\n", user.ID)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.Flags().StringP("login", "l", "", "unique login")
	userCreateCmd.Flags().StringP("name", "n", "", "display name")
	userCreateCmd.Flags().StringP("password", "w", "", "plaintext password, hashed before storage")
	userCreateCmd.Flags().Bool("admin", false, "mark the account as a platform admin")
}

func createUser(login, name, password string, admin bool) (*store.User, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	hasher := identity.NewHasher(config.Get().BcryptCost)
	hashed, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &store.User{
		Name:     name,
		Login:    login,
		Password: hashed,
		IsAdmin:  admin,
	}
	if err := gormstore.NewUsersStore(database).CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
