// Command userctl is a small CLI client for the user-directory service.
//
// Usage:
//
//	userctl list
//	userctl get -id 1
//	userctl create -name "Alice" -email alice@x.com
//	userctl update -id 1 -name "Alice B" -email alice@x.com
//	userctl delete -id 1
//
// Server address and credentials come from CLIENT_ADDRESS, CLIENT_AUTH_TOKEN,
// and CLIENT_REQUEST_TIMEOUT environment variables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/models"
)

func main() {
	log := logger.NewClientLogger("userctl")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	directory, err := adapter.NewHTTPDirectoryAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating directory adapter")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:], directory); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(command string, args []string, directory adapter.DirectoryAdapter) error {
	ctx := context.Background()

	switch command {
	case "list":
		users, err := directory.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(users)

	case "get":
		fs := flag.NewFlagSet("get", flag.ExitOnError)
		id := fs.Int64("id", 0, "user ID")
		_ = fs.Parse(args)

		user, err := directory.GetUser(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		name := fs.String("name", "", "user name")
		email := fs.String("email", "", "user email")
		_ = fs.Parse(args)

		created, err := directory.CreateUser(ctx, models.User{Name: *name, Email: *email})
		if err != nil {
			return err
		}
		return printJSON(created)

	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		id := fs.Int64("id", 0, "user ID")
		name := fs.String("name", "", "user name")
		email := fs.String("email", "", "user email")
		_ = fs.Parse(args)

		updated, err := directory.UpdateUser(ctx, models.User{ID: *id, Name: *name, Email: *email})
		if err != nil {
			return err
		}
		return printJSON(updated)

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "user ID")
		_ = fs.Parse(args)

		if err := directory.DeleteUser(ctx, *id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: userctl <list|get|create|update|delete> [flags]")
}
