package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smmhub/pkg/db"
	"smmhub/pkg/rights"
	gormstore "smmhub/pkg/server/store/gorm"
)

// userGrantCmd represents the user grant command
var userGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant a permission in an organization",
	Long: `Grant an account a permission within an organization.

Grants are additive: a user may hold several permissions in the same
organization. The API has no grant endpoint; this command is the
administrative path for grants beyond the creator's owner grant.

Example:
  smmctl user grant --login alice --organization 1 --permission admin`,
	Run: func(cmd *cobra.Command, args []string) {
		login, _ := cmd.Flags().GetString("login")
		orgID, _ := cmd.Flags().GetInt64("organization")
		permission, _ := cmd.Flags().GetString("permission")

		if login == "" || orgID == 0 || permission == "" {
			fmt.Fprintln(os.Stderr, "--login, --organization, and --permission are required")
			os.Exit(1)
		}
		if !rights.Known(permission) {
			fmt.Fprintf(os.Stderr, "Unknown permission '%s'\n", permission)
			os.Exit(1)
		}

		if err := grantPermission(login, orgID, permission); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to grant permission: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Granted '%s' to '%s' in organization %d\n", permission, login, orgID)
	},
}

func init() {
	userCmd.AddCommand(userGrantCmd)

	userGrantCmd.Flags().StringP("login", "l", "", "account login")
	userGrantCmd.Flags().Int64P("organization", "o", 0, "organization id")
	userGrantCmd.Flags().StringP("permission", "r", "", "permission name from the catalog")
}

func grantPermission(login string, orgID int64, permission string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	user, err := gormstore.NewUsersStore(database).UserByLogin(login)
	if err != nil {
		return fmt.Errorf("user '%s': %w", login, err)
	}

	return gormstore.NewMembershipsStore(database).Grant(user.ID, orgID, permission)
}
