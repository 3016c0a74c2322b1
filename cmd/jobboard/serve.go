package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jobexecutive/jobboard/internal/boost"
	"github.com/jobexecutive/jobboard/internal/config"
	"github.com/jobexecutive/jobboard/internal/llm"
	"github.com/jobexecutive/jobboard/internal/server"
	"github.com/jobexecutive/jobboard/internal/store"
)

var (
	servePort int
	serveSeed string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job board REST endpoints. State is held in memory and seeded from --seed, SEED_FILE, or the built-in dataset.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveSeed, "seed", "", "Path to a JSON seed file (overrides SEED_FILE)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srvCfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}
	if servePort != 0 {
		srvCfg.Port = servePort
	}
	if serveSeed != "" {
		srvCfg.SeedPath = serveSeed
	}

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT configuration: %w", err)
	}

	seed := store.DefaultSeed()
	if srvCfg.SeedPath != "" {
		seed, err = store.LoadSeed(srvCfg.SeedPath)
		if err != nil {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
	}

	var booster *boost.Booster
	if srvCfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(cmd.Context(), srvCfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer client.Close()
		booster = boost.New(client)
	} else {
		log.Println("GEMINI_API_KEY not set; text enhancement endpoint disabled")
	}

	srv, err := server.New(server.Config{
		Port:       srvCfg.Port,
		Store:      store.New(seed),
		JWT:        jwtCfg,
		Booster:    booster,
		CORSOrigin: srvCfg.CORSOrigin,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
