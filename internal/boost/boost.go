// Package boost rewrites resume summaries into stronger, ATS-friendly text
// using an LLM.
package boost

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobexecutive/jobboard/internal/llm"
)

const promptTemplate = `You are an expert career coach. Rewrite the following resume experience summary to be more professional, impactful, and tailored for Applicant Tracking Systems (ATS). Use strong action verbs and quantify achievements where possible. Keep it concise, under 150 words.

Original text: %q`

// Booster rewrites free text through an LLM client.
type Booster struct {
	client llm.Client
}

// New creates a Booster backed by the given client.
func New(client llm.Client) *Booster {
	return &Booster{client: client}
}

// Rewrite returns an enhanced version of the given resume text. The input
// must be non-empty; LLM failures are returned as errors, never as
// substitute text.
func (b *Booster) Rewrite(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text to rewrite is empty")
	}

	out, err := b.client.GenerateContent(ctx, fmt.Sprintf(promptTemplate, text))
	if err != nil {
		return "", fmt.Errorf("failed to enhance text: %w", err)
	}
	return strings.TrimSpace(out), nil
}
