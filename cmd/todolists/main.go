package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path"
	"strings"

	"github.com/nicolagi/todolists"
	log "github.com/sirupsen/logrus"
)

var (
	client *todolists.Client
	store  *todolists.Store
)

func main() {
	if os.Getenv("TODOLISTS_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}
	home := mustHomeDir()
	keyFile := path.Join(home, "lib/todolists/key")
	endpointFile := path.Join(home, "lib/todolists/endpoint")
	wireLogFile := path.Join(home, "lib/todolists/wire.log")
	apiKey := mustReadKeyFile(keyFile)
	client = mustCreateClient(apiKey, readEndpointFile(endpointFile), wireLogFile)
	store = todolists.NewStore()
	store.Subscribe(onStateChange)
	if err := store.Run(context.Background(), todolists.LoadTodolists(client)); err != nil {
		log.WithField("cause", err).Warning("Could not load todo-lists, use Get to retry")
	}

	// Create initial window listing all todo-lists.
	newAllTodolistsWindow()

	// The program will be terminated when the last acme window owned by this process is deleted.
	select {}
}

func mustHomeDir() string {
	u, err := user.Current()
	if err != nil {
		log.WithField("cause", err).Fatal("Could not get current user")
	}
	return u.HomeDir
}

func mustReadKeyFile(keyFile string) string {
	logEntry := log.WithField("path", keyFile)
	fi, err := os.Stat(keyFile)
	if err != nil {
		logEntry.WithField("cause", err).Fatal("Could not check permissions")
	}
	if fi.Mode()&0077 != 0 {
		logEntry.WithFields(log.Fields{
			"got":  fmt.Sprintf("%#o", fi.Mode()),
			"want": fmt.Sprintf("%#o", fi.Mode()&0700),
		}).Fatal("Stricter permissions required")
	}
	b, err := ioutil.ReadFile(keyFile)
	if err != nil {
		logEntry.WithField("cause", err).Fatal("API key not found")
	}
	return strings.TrimSpace(string(b))
}

// readEndpointFile returns the endpoint override, or the empty string if there is none.
func readEndpointFile(endpointFile string) string {
	b, err := ioutil.ReadFile(endpointFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(log.Fields{
				"path":  endpointFile,
				"cause": err,
			}).Warning("Could not read endpoint, using default")
		}
		return ""
	}
	return strings.TrimSpace(string(b))
}

func mustCreateClient(apiKey string, endpoint string, wireLogFile string) *todolists.Client {
	opts := []todolists.ClientOption{todolists.WithWireLog(wireLogFile)}
	if endpoint != "" {
		opts = append(opts, todolists.WithEndpoint(endpoint))
	}
	client, err := todolists.NewClient(apiKey, opts...)
	if err != nil {
		log.WithField("cause", err).Fatal("Could not create client")
	}
	return client
}
