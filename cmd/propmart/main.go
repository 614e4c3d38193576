// Command propmart is a thin CLI over the marketplace SDK, mainly for
// poking at a running backend during development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"propmart/config"
	"propmart/internal/client"
	"propmart/internal/domain/entity"
	logs "propmart/internal/infra/log"
	"propmart/internal/transport"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login:      Exchange credentials for a token
// - properties: List listings with optional filters
// - wishlist:   Show or toggle saved properties
// - stats:      Show the admin dashboard snapshot

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	propertiesCmd := flag.NewFlagSet("properties", flag.ExitOnError)
	wishlistCmd := flag.NewFlagSet("wishlist", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)

	// login parameters
	loginEmail := loginCmd.String("email", "", "Account email")
	loginPassword := loginCmd.String("password", "", "Account password")

	// properties parameters
	propSearch := propertiesCmd.String("search", "", "Free-text search")
	propCity := propertiesCmd.String("city", "", "Filter by city")
	propType := propertiesCmd.String("type", "", "Filter by property type")
	propTransaction := propertiesCmd.String("transaction", "", "Filter by transaction type (sale, rent, lease)")
	propBedrooms := propertiesCmd.Int("bedrooms", 0, "Filter by bedroom count (0 = any)")
	propMinPrice := propertiesCmd.Float64("min-price", 0, "Minimum price (0 = any)")
	propMaxPrice := propertiesCmd.Float64("max-price", 0, "Maximum price (0 = any)")

	// wishlist parameters
	wishlistToken := wishlistCmd.String("token", "", "Bearer token from login")
	wishlistToggle := wishlistCmd.String("toggle", "", "Property id to add or remove")

	// stats parameters
	statsToken := statsCmd.String("token", "", "Bearer token from an admin login")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := cliFlags{
		Login: loginFlags{
			cmd:      loginCmd,
			email:    loginEmail,
			password: loginPassword,
		},
		Properties: propertiesFlags{
			cmd:         propertiesCmd,
			search:      propSearch,
			city:        propCity,
			typ:         propType,
			transaction: propTransaction,
			bedrooms:    propBedrooms,
			minPrice:    propMinPrice,
			maxPrice:    propMaxPrice,
		},
		Wishlist: wishlistFlags{
			cmd:    wishlistCmd,
			token:  wishlistToken,
			toggle: wishlistToggle,
		},
		Stats: statsFlags{
			cmd:   statsCmd,
			token: statsToken,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	Login      loginFlags
	Properties propertiesFlags
	Wishlist   wishlistFlags
	Stats      statsFlags
}

type loginFlags struct {
	cmd      *flag.FlagSet
	email    *string
	password *string
}

type propertiesFlags struct {
	cmd         *flag.FlagSet
	search      *string
	city        *string
	typ         *string
	transaction *string
	bedrooms    *int
	minPrice    *float64
	maxPrice    *float64
}

type wishlistFlags struct {
	cmd    *flag.FlagSet
	token  *string
	toggle *string
}

type statsFlags struct {
	cmd   *flag.FlagSet
	token *string
}

func runSubcommand(ctx context.Context, flags *cliFlags) error {
	switch os.Args[1] {
	case "login":
		if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return runLogin(ctx, flags.Login)
	case "properties":
		if err := flags.Properties.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return runProperties(ctx, flags.Properties)
	case "wishlist":
		if err := flags.Wishlist.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return runWishlist(ctx, flags.Wishlist)
	case "stats":
		if err := flags.Stats.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return runStats(ctx, flags.Stats)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", os.Args[1])
	}
}

func newClient(token string) (*client.Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if token != "" {
		cfg.API.Token = token
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	httpClient, err := transport.NewHTTPClient(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "build transport")
	}

	return client.New(httpClient, logger), nil
}

func runLogin(ctx context.Context, flags loginFlags) error {
	if *flags.email == "" || *flags.password == "" {
		return errors.New("login requires -email and -password")
	}

	sdk, err := newClient("")
	if err != nil {
		return err
	}

	session, err := sdk.Auth.Login(ctx, client.Credentials{Email: *flags.email, Password: *flags.password})
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", session.User.Name, session.User.Role)
	fmt.Printf("Token: %s\n", session.Token)

	return nil
}

func runProperties(ctx context.Context, flags propertiesFlags) error {
	sdk, err := newClient("")
	if err != nil {
		return err
	}

	filter := &client.PropertyFilter{
		Search:       *flags.search,
		City:         *flags.city,
		PropertyType: *flags.typ,
	}
	if *flags.transaction != "" {
		filter.TransactionType = entity.TransactionType(*flags.transaction)
	}
	if *flags.bedrooms > 0 {
		filter.Bedrooms = flags.bedrooms
	}
	if *flags.minPrice > 0 {
		filter.MinPrice = flags.minPrice
	}
	if *flags.maxPrice > 0 {
		filter.MaxPrice = flags.maxPrice
	}

	listings, err := sdk.Properties.List(ctx, filter)
	if err != nil {
		return err
	}

	if len(listings) == 0 {
		fmt.Println("No listings matched.")

		return nil
	}

	for _, listing := range listings {
		fmt.Printf("%-36s  %-30s  %-12s  %10.0f  %s\n",
			listing.ID, listing.Title, listing.Location.City, listing.Price, listing.Status)
	}

	return nil
}

func runWishlist(ctx context.Context, flags wishlistFlags) error {
	if *flags.token == "" {
		return errors.New("wishlist requires -token (run login first)")
	}

	sdk, err := newClient(*flags.token)
	if err != nil {
		return err
	}

	if _, err := sdk.Wishlist.List(ctx); err != nil {
		return err
	}

	if *flags.toggle != "" {
		if err := sdk.Wishlist.Toggle(ctx, *flags.toggle); err != nil {
			return err
		}
	}

	ids := sdk.Wishlist.PropertyIDs()
	if len(ids) == 0 {
		fmt.Println("Wishlist is empty.")

		return nil
	}

	for _, id := range ids {
		fmt.Println(id)
	}

	return nil
}

func runStats(ctx context.Context, flags statsFlags) error {
	if *flags.token == "" {
		return errors.New("stats requires -token from an admin login")
	}

	sdk, err := newClient(*flags.token)
	if err != nil {
		return err
	}

	stats, err := sdk.Dashboard.Fetch(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Users:      %d\n", stats.TotalUsers)
	fmt.Printf("Properties: %d (%d pending review)\n", stats.TotalProperties, stats.PendingPropertiesCount)
	fmt.Printf("Inquiries:  %d\n", stats.TotalInquiries)

	return nil
}

func printUsage() {
	fmt.Println("Usage: propmart <subcommand> [flags]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  login       Exchange credentials for a token")
	fmt.Println("  properties  List listings with optional filters")
	fmt.Println("  wishlist    Show or toggle saved properties (-token required)")
	fmt.Println("  stats       Show the admin dashboard snapshot (-token required)")
}
