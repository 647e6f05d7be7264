// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - Env: development, production or test (default: development)
  - CORSOrigin: Access-Control-Allow-Origin value (default: *)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-env          Environment
	-cors-origin  Allowed CORS origin
	-c            YAML config file
	-env-file     Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	APP_ENV       → -env
	CORS_ORIGIN   → -cors-origin
	CONFIG_FILE   → -c

Variables missing from the process environment are read from the .env file.
The .env file never overrides a variable that is already set.

# Config File

An optional YAML file supplies values below the environment:

	port: 8080
	database_url: postgres://localhost/contractflow?sslmode=disable
	database_type: postgres
	env: production
	cors_origin: https://records.example.org

Precedence, highest first: flags, environment, .env, config file, defaults.

# Validation

ParseFlags returns an error if:

  - no database URL is provided
  - the database type is not sqlite or postgres
  - the port is not a valid TCP port

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	handler := router.NewRouter(conn, cfg, logger)
*/
package cliparse
