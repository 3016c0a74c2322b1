package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobexecutive/jobboard/internal/boost"
	"github.com/jobexecutive/jobboard/internal/llm"
)

var (
	boostText string
	boostFile string
)

var boostCmd = &cobra.Command{
	Use:   "boost",
	Short: "Rewrite profile or posting text with the language model",
	Long:  `Run a one-shot enhancement of the given text, the same rewrite the /boost endpoint performs. Requires GEMINI_API_KEY.`,
	RunE:  runBoost,
}

func init() {
	boostCmd.Flags().StringVar(&boostText, "text", "", "Text to enhance")
	boostCmd.Flags().StringVar(&boostFile, "file", "", "Path to a file whose contents to enhance")
	rootCmd.AddCommand(boostCmd)
}

func runBoost(cmd *cobra.Command, _ []string) error {
	text := boostText
	if text == "" && boostFile != "" {
		data, err := os.ReadFile(boostFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		return fmt.Errorf("either --text or --file is required")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := llm.NewGeminiClient(cmd.Context(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	boosted, err := boost.New(client).Rewrite(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("failed to enhance text: %w", err)
	}

	fmt.Println(boosted)
	return nil
}
