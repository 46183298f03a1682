package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvBlock is a commented group of KEY=VALUE lines an overlay requires in the
// project's .env file.
type EnvBlock struct {
	Comment string
	Lines   []string
}

// EnsureEnvEntries appends any missing entries from blocks to the env file at
// path, creating the file when absent. Existing lines are never rewritten or
// reordered: the patch is a line-level diff against the blocks' key list,
// append-only. Returns the keys that were added.
func EnsureEnvEntries(path string, blocks []EnvBlock) ([]string, error) {
	existing := map[string]string{}
	if data, err := os.ReadFile(path); err == nil {
		parsed, parseErr := godotenv.Unmarshal(string(data))
		if parseErr != nil {
			return nil, fmt.Errorf("parsing env file %s: %w", path, parseErr)
		}
		existing = parsed
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	var sb strings.Builder
	var added []string
	for _, block := range blocks {
		var missing []string
		for _, line := range block.Lines {
			key := envLineKey(line)
			if key == "" {
				continue
			}
			if _, ok := existing[key]; ok {
				continue
			}
			missing = append(missing, line)
			added = append(added, key)
		}
		if len(missing) == 0 {
			continue
		}
		sb.WriteString("\n")
		if block.Comment != "" {
			sb.WriteString(block.Comment + "\n")
		}
		for _, line := range missing {
			sb.WriteString(line + "\n")
		}
	}
	if sb.Len() == 0 {
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(sb.String()); err != nil {
		return nil, fmt.Errorf("appending to env file %s: %w", path, err)
	}
	return added, nil
}

func envLineKey(line string) string {
	key, _, ok := strings.Cut(line, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}
