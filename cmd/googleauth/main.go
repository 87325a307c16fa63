package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-offline-auth/googleauth"
	"github.com/jrsteele09/go-offline-auth/internal/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	c := config.New()
	displayAppname(c.GetAppName())

	if err := run(c, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(c config.Config, command string, args []string) error {
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	scopes := flags.String("scopes", "", "comma separated permission scopes (required)")
	secretFile := flags.String("client-secret-file", "", "path of the client secret JSON")
	stateFile := flags.String("auth-state-file", "", "path of the cached credentials JSON, or 'false' to disable caching")
	refreshToken := flags.String("refresh-token", "", "refresh token for environments without a cache file")
	code := flags.String("code", "", "authorization code obtained from the consent URL (login only)")
	verify := flags.Bool("verify", false, "verify the id token returned at login (login only)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	opts := googleauth.Options{
		Scopes:              splitScopes(*scopes),
		ClientSecretFile:    *secretFile,
		AuthStateFile:       *stateFile,
		DefaultRefreshToken: *refreshToken,
	}
	if *verify {
		secret := *secretFile
		if secret == "" {
			secret = c.GetClientSecretFile()
		}
		opts.Verifier = googleauth.NewOIDCVerifier(c.GetGoogleIssuer(), secret)
	}

	manager, err := googleauth.New(c, opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch command {
	case "url":
		url, err := manager.AuthURL()
		if err != nil {
			return err
		}
		fmt.Println(url)
	case "login":
		if *code == "" {
			return errors.New("login requires -code")
		}
		if err := manager.Login(ctx, *code); err != nil {
			return err
		}
		log.Info().Msg("login complete")
	case "token":
		token, err := manager.Token(ctx)
		if err != nil {
			return err
		}
		fmt.Println(token.AccessToken)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func splitScopes(s string) []string {
	var scopes []string
	for _, scope := range strings.Split(s, ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: googleauth <url|login|token> [flags]")
	fmt.Fprintln(os.Stderr, "  url    print the consent URL for offline access")
	fmt.Fprintln(os.Stderr, "  login  exchange an authorization code and persist the token set")
	fmt.Fprintln(os.Stderr, "  token  print a valid access token, refreshing it when needed")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
