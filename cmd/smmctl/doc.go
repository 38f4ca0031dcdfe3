// Package main implements smmctl, the smmhub server CLI.
//
// smmhub is a multi-tenant account and organization-membership service:
// users register, authenticate, create organizations, and manage
// per-organization role-based permissions and bot credentials.
//
// # Quick Start
//
//	# Run database migrations
//	smmctl db migrate
//
//	# Create an account from the command line
//	smmctl user create --login alice --name Alice --password secret
//
//	# Grant a permission
//	smmctl user grant --login alice --organization 1 --permission admin
//
//	# Start the server
//	export SMM_TOKEN_KEY=$(head -c 32 /dev/urandom | base64)
//	smmctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - SMM_TOKEN_KEY: secret used to sign identity tokens
//   - SMM_CONFIG_PATH: directory containing smmhub.yml
//   - SMM_LOG_LEVEL: set to "debug" for SQL query logging
//   - PORT: server port override
package main
