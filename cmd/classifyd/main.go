package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"

	"github.com/strk/classifier"
	"github.com/strk/classifier/server"
)

var config = NewConfig()
var configPath string

func init() {
	log.SetFlags(0)
	flag.UintVar(&config.Port, "port", config.Port, "the port to listen on")
	flag.UintVar(&config.Port, "p", config.Port, "the port to listen on")
	flag.StringVar(&config.DataDir, "data-dir", config.DataDir, "the data directory (defaults to ~/.classifier)")
	flag.StringVar(&configPath, "config", "", "the path to the config file")
}

func main() {
	// Parse the command line arguments and load the config file (if specified).
	flag.Parse()
	if configPath != "" {
		file, err := os.Open(configPath)
		if err != nil {
			fmt.Printf("Unable to open config: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		if err = config.Decode(file); err != nil {
			fmt.Printf("Unable to parse config: %v\n", err)
			os.Exit(1)
		}
	}

	// Default the data directory to ~/.classifier
	if config.DataDir == "" {
		u, err := user.Current()
		if err != nil {
			log.Fatal(err)
		}
		config.DataDir = filepath.Join(u.HomeDir, ".classifier")
	}
	if err := os.MkdirAll(config.DataDir, 0700); err != nil {
		log.Fatal(err)
	}

	// Initialize
	s := server.NewServer(config.Port, filepath.Join(config.DataDir, "classifier.db"))
	s.Version = classifier.Version

	// Print configuration.
	log.Printf("Classifier %s", classifier.Version)
	log.Printf("Listening on http://localhost%s", s.Addr)
	log.Println("")
	log.Println("[config]")
	log.Printf("port     = %v", config.Port)
	log.Printf("data-dir = %v", config.DataDir)
	log.Println("")

	// Start the server.
	log.SetFlags(log.LstdFlags)
	log.Fatal(s.ListenAndServe())
}
