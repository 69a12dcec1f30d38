/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv);
real environment variables take precedence over file values, and CLI
flags take precedence over both.

# Config Fields

  - Port: Server listen port (default: 3210)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AuthTokenSalt: Secret for principal token HMAC (required)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-auth-salt  Auth token salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	AUTH_TOKEN_SALT → -auth-salt

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - AUTH_TOKEN_SALT must be provided
*/
package cliparse
