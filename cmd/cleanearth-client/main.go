// Command cleanearth-client is a terminal client for the CleanEarth API.
// It drives the same session store, route guard and view controllers the
// app UI uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/config"
	"github.com/23F3001886/CleanEarth/internal/session"
	"github.com/23F3001886/CleanEarth/internal/views"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store := session.NewStore(cfg.Client.SessionFile)
	client := apiclient.New(cfg.Client.BaseURL, store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "login":
		runLogin(ctx, client, store, args[1:])
	case "logout":
		shell := views.NewShell(client, store, "")
		shell.Logout(ctx)
		fmt.Println("logged out")
	case "whoami":
		runWhoami(store)
	case "requests":
		runRequests(ctx, client, store)
	case "report":
		runReport(ctx, client, store, args[1:])
	case "camps":
		runCamps(ctx, client, store)
	case "join":
		runJoin(ctx, client, store, args[1:])
	case "leaderboard":
		runLeaderboard(ctx, client, store)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cleanearth-client [-config file] <command>

commands:
  login <email> <password>            sign in and persist the session
  logout                              revoke the token and clear the session
  whoami                              show the stored session
  requests                            list waste reports (role-dependent)
  report <pincode> <lat> <lng> <desc> <addr>
                                      file a waste report
  camps                               list camps for your role
  join <camp-id>                      join a camp
  leaderboard                         show volunteer standings`)
}

// requireSession resolves the guard for a protected page and exits when it
// would redirect to login.
func requireSession(store *session.Store, route views.Route) {
	guard := views.NewGuard(store)
	if resolved := guard.Resolve(route); resolved != route {
		log.Fatalf("not signed in for %s (try: cleanearth-client login <email> <password>)", route)
	}
}

func runLogin(ctx context.Context, client *apiclient.Client, store *session.Store, args []string) {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	view := views.NewLoginView(client, store)
	route, err := view.Submit(ctx, views.LoginForm{Email: args[0], Password: args[1]})
	if err != nil {
		log.Fatalf("login: %s", view.Err)
	}
	sess, _ := store.Get()
	fmt.Printf("signed in as %s (%s), landing page %s\n", sess.User.Name, sess.User.Role, route)
}

func runWhoami(store *session.Store) {
	sess, ok := store.Get()
	if !ok {
		fmt.Println("not signed in")
		return
	}
	fmt.Printf("%s <%s> role=%s pincode=%s\n", sess.User.Name, sess.User.Email, sess.User.Role, sess.User.Pincode)
}

func runRequests(ctx context.Context, client *apiclient.Client, store *session.Store) {
	requireSession(store, views.RouteReport)
	view := views.NewRequestView(client, store)
	view.Load(ctx)
	if view.Err != "" {
		log.Fatalf("requests: %s", view.Err)
	}
	for _, r := range view.Requests {
		fmt.Printf("#%d [%s] %s - %s (%s)\n", r.ID, r.Status, r.Pincode, r.Description, r.Address)
	}
}

func runReport(ctx context.Context, client *apiclient.Client, store *session.Store, args []string) {
	if len(args) != 5 {
		usage()
		os.Exit(2)
	}
	requireSession(store, views.RouteReport)
	view := views.NewRequestView(client, store)
	err := view.Submit(ctx, views.RequestForm{
		Pincode:     args[0],
		Latitude:    args[1],
		Longitude:   args[2],
		Description: args[3],
		Address:     args[4],
	})
	if err != nil {
		log.Fatalf("report: %s", view.SubmitErr)
	}
	created := view.Requests[len(view.Requests)-1]
	fmt.Printf("report #%d filed\n", created.ID)
}

func runCamps(ctx context.Context, client *apiclient.Client, store *session.Store) {
	sess, ok := store.Get()
	if !ok {
		log.Fatal("not signed in")
	}

	if sess.User.Role == "volunteer" {
		view := views.NewVolunteerDashboardView(client, store)
		view.Load(ctx)
		if view.CampsErr != "" {
			log.Fatalf("camps: %s", view.CampsErr)
		}
		fmt.Println("upcoming:")
		for _, c := range view.UpcomingCamps {
			fmt.Printf("  #%d %s on %s at %s (%s)\n", c.ID, c.Name, c.Date, c.Timing, c.Location)
		}
		fmt.Println("completed:")
		for _, c := range view.CompletedCamps {
			fmt.Printf("  #%d %s, %s collected\n", c.ID, c.Name, c.WasteCollected)
		}
		return
	}

	view := views.NewHomeView(client, store)
	view.Load(ctx)
	if view.CampsErr != "" {
		log.Fatalf("camps: %s", view.CampsErr)
	}
	for _, c := range view.NearbyCamps {
		state := " "
		if c.IsParticipating {
			state = "*"
		}
		fmt.Printf("%s #%d %s on %s, %d spots left\n", state, c.ID, c.Name, c.Date, c.SpotsLeft)
	}
}

func runJoin(ctx context.Context, client *apiclient.Client, store *session.Store, args []string) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		log.Fatalf("join: bad camp id %q", args[0])
	}
	requireSession(store, views.RouteCamp)

	view := views.NewHomeView(client, store)
	view.Load(ctx)
	if err := view.JoinCamp(ctx, uint(id)); err != nil {
		log.Fatalf("join: %s", view.JoinErr)
	}
	fmt.Printf("joined camp #%d\n", id)
}

func runLeaderboard(ctx context.Context, client *apiclient.Client, store *session.Store) {
	view := views.NewLeaderboardView(client, store)
	view.Load(ctx)
	if view.Err != "" {
		log.Fatalf("leaderboard: %s", view.Err)
	}
	for i, row := range view.Rows {
		marker := " "
		if view.IsCurrentUser(row) {
			marker = "*"
		}
		fmt.Printf("%s %2d. %-20s %4d pts (%d camps, %d badges)\n",
			marker, i+1, row.Name, row.Points, row.CampsCompleted, row.Badges)
	}
}
