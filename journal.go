package main

import (
	"bytes"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/werres/journal/core"
	"github.com/werres/journal/sqldb"
	"github.com/werres/journal/sqldb/mysql"
	"github.com/werres/journal/sqldb/sqlite3"
	"github.com/werres/journal/util"
	"github.com/werres/journal/web"
	"github.com/xo/dburl"
	"golang.org/x/crypto/ssh/terminal"
)

const defaultDBURL = "sqlite3:journal.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared"

func init() {
	log.SetFlags(0) // no log prefixes, on most systems systemd-journald adds them
}

func main() {

	var dbArg string // is in both FlagSets

	// default FlagSet

	// Your reverse proxy must not strip the prefix.
	var base = flag.String("base", "", "strip off this `prefix` from every HTTP request and prepend it to every redirect")
	flag.StringVar(&dbArg, "db", defaultDBURL, "sql database url, see github.com/xo/dburl")
	var listenAddr = flag.String("listen", "127.0.0.1:8080", "serve HTTP content at this `ip:port`")

	// init FlagSet

	var initFlags = flag.NewFlagSet("init", flag.ExitOnError)

	initFlags.StringVar(&dbArg, "db", defaultDBURL, "sql database url, see github.com/xo/dburl") // copied from above
	var initInsert = initFlags.Bool("insert", false, "creates the given group or user")
	var groupSlug = initFlags.String("group", "", "specifies a group `slug`")
	var groupTitle = initFlags.String("title", "", "specifies the title of a new group")
	var groupDesc = initFlags.String("desc", "", "specifies the description of a new group")
	var username = initFlags.String("user", "", "specifies a user `name`")

	if len(os.Args) > 1 && os.Args[1] == "init" {
		initFlags.Parse(os.Args[2:])
	} else {
		flag.Parse()
	}

	// database

	dbURL, err := dburl.Parse(dbArg)
	if err != nil {
		log.Printf("could not parse database url: %v", err)
		return
	}

	sqlDB, err := sql.Open(dbURL.Driver, dbURL.DSN)
	if err != nil {
		log.Printf("could not open sql database: %v", err)
		return
	}

	if err = sqlDB.Ping(); err != nil {
		log.Printf("could not ping sql database: %v", err)
		return
	}

	log.Printf("using database %s", dbURL.String())

	// base

	*base = strings.Trim(*base, "/")
	if *base != "" {
		*base = "/" + *base
	}

	// assemble stuff

	var sessionStore scs.Store
	switch dbURL.Driver {
	case "mysql":
		sessionStore = mysql.NewSessionStore(sqlDB)
	case "sqlite3":
		sessionStore = sqlite3.NewSessionStore(sqlDB)
	default:
		log.Printf("unknown database backend: %s", dbURL.Driver)
		return
	}

	var app = &core.App{}
	app.GroupDB = sqldb.NewGroupDB(sqlDB)
	app.PostDB = sqldb.NewPostDB(sqlDB)
	app.UserDB = sqldb.NewUserDB(sqlDB)

	if config, err := util.Ini("journal.ini"); err == nil {
		if n, err := strconv.Atoi(config["posts_per_page"]); err == nil {
			app.PostsPerPage = n
		}
	}

	app.Init(sessionStore, *base)

	defer func() {
		log.Println("closing database")
		sqlDB.Close()
	}()

	// init

	if initFlags.Parsed() {
		if *initInsert {
			if *groupSlug != "" {
				insertGroup(app, *groupSlug, *groupTitle, *groupDesc)
			}
			if *username != "" {
				insertUser(app, *username)
			}
		}
		return
	}

	listen(app, *listenAddr, *base)
}

func insertGroup(app *core.App, slug, title, description string) {
	if err := app.InsertGroup(slug, title, description); err != nil {
		log.Printf(`error creating group "%s": %v`, slug, err)
	}
}

func insertUser(app *core.App, name string) {

	fmt.Printf("password for user %s: ", name)
	pass1, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return
	}

	fmt.Printf("repeat password: ")
	pass2, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return
	}

	if !bytes.Equal(pass1, pass2) {
		log.Printf("passwords don't match")
		return
	}

	user, err := app.InsertUser(name)
	if err != nil {
		log.Printf("error creating user %s: %v", name, err)
		return
	}

	if err := app.SetPassword(user, string(pass1)); err != nil {
		log.Printf("error setting password: %v", err)
		return
	}
}

func listen(app *core.App, addr string, base string) {

	var mux = http.NewServeMux()
	util.HandlePrefix(mux, base+"/static", http.FileServer(http.Dir("static")))
	util.HandlePrefix(mux, base, web.NewRouter(app))

	// listener and listen

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("listening to %s", addr)

	httpSrv := &http.Server{
		Handler:      app.SessionManager.LoadAndSave(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil {

			// don't panic, we want a graceful shutdown
			if err != http.ErrServerClosed {
				log.Printf("error listening: %v", err)
			}

			// ensure graceful shutdown
			sigintChannel <- os.Interrupt
		}
	}()

	// graceful shutdown

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM) // SIGINT (Interrupt) or SIGTERM
	<-sigintChannel

	log.Println("shutting down")
	httpSrv.Close()
}
