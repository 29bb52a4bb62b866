package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"skolmaten/internal/auth"
	"skolmaten/internal/cache"
	"skolmaten/internal/config"
	"skolmaten/internal/db"
	"skolmaten/internal/importer"
	"skolmaten/internal/logging"
	"skolmaten/internal/model"
	"skolmaten/internal/policy"
	"skolmaten/internal/repository"
	"skolmaten/internal/service"
)

// options are the seed command's flags.
type options struct {
	migrateOnly bool
	admin       bool
	menu        string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.BoolVar(&opts.migrateOnly, "migrate-only", false, "create the schema and exit")
	fs.BoolVar(&opts.admin, "admin", false, "create the admin account if it is missing")
	fs.StringVar(&opts.menu, "menu", "", "import a menu document from a file path, http(s) URL or s3://bucket/key")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// readPassword is a seam for term.ReadPassword.
var readPassword = term.ReadPassword

// promptPassword asks for the admin password, hiding input on a terminal.
func promptPassword(in *os.File, out io.Writer) (string, error) {
	fmt.Fprint(out, "Admin password: ")
	if term.IsTerminal(int(in.Fd())) {
		b, err := readPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	ctx := context.Background()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(ctx, cfg, opts, log); err != nil {
		log.Error(ctx, "seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts *options, log logging.Logger) error {
	gormDB, err := db.Open(cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	log.Info(ctx, "database migrations completed", "driver", cfg.DBDriver)
	if opts.migrateOnly {
		return nil
	}

	userRepo := repository.NewUserRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	credentials := service.NewCredentialService(userRepo, auth.NewPasswordHasher(cfg.BcryptCost), log)
	tokens := service.NewTokenService(userRepo, auth.NewJWTService(cfg.TokenSecret), log)
	menuService := service.NewMenuService(menuRepo, commentRepo, cacheClient, log)
	guard := policy.NewGuard(credentials, tokens, menuService, service.NewCommentService(commentRepo, log), log)

	if opts.admin {
		password := cfg.AdminPassword
		if password == "" {
			if password, err = promptPassword(os.Stdin, os.Stderr); err != nil {
				return fmt.Errorf("read admin password: %w", err)
			}
		}
		created, err := credentials.EnsureAdmin(ctx, cfg.AdminName, password)
		if err != nil {
			return err
		}
		log.Info(ctx, "admin account checked", "name", cfg.AdminName, "created", created)
	}

	if opts.menu != "" {
		opener, err := importer.NewOpener(ctx, importer.S3Config{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return err
		}
		entries, err := opener.Load(ctx, opts.menu)
		if err != nil {
			return fmt.Errorf("load %s: %w", opts.menu, err)
		}

		// Imports run as the admin so they pass the same checks as the API.
		admin, err := credentials.Get(ctx, model.AdminID)
		if err != nil {
			return fmt.Errorf("import needs the admin account, run with -admin first: %w", err)
		}
		n, err := guard.ImportMenu(ctx, admin.Identity(), entries)
		if err != nil {
			return err
		}
		log.Info(ctx, "menu imported", "location", opts.menu, "entries", n)
	}
	return nil
}
