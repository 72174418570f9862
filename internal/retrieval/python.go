// Package retrieval runs the Python vector-search script as a subprocess.
// The script owns the embedding model and the vector store; this side only
// speaks its CLI contract: argv is [query, topK], stdout is a JSON array of
// passages, non-zero exit means failure.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"chatwithgod/internal/model"
)

type Client struct {
	pythonBin string
	script    string
	timeout   time.Duration
}

func NewClient(pythonBin, script string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{pythonBin: pythonBin, script: script, timeout: timeout}
}

// Search invokes the script once and parses its output. Exit-0 output that
// is not a well-formed passage list (bad JSON, a passage without content)
// is reported as an error rather than passed through.
func (c *Client) Search(ctx context.Context, query string, topK int) ([]model.Passage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.pythonBin, c.script, query, strconv.Itoa(topK))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// a killed script can leave children holding the output pipes open;
	// don't let them keep the request hanging past the deadline
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("retrieval script failed: %w (stderr: %s)", err, stderr.String())
	}

	var passages []model.Passage
	if err := json.Unmarshal(stdout.Bytes(), &passages); err != nil {
		return nil, fmt.Errorf("retrieval script returned malformed JSON: %w", err)
	}
	for i, p := range passages {
		if p.Content == "" {
			return nil, fmt.Errorf("retrieval script returned passage %d without content", i)
		}
	}
	return passages, nil
}
