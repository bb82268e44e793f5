package scenario

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion returns cfg.Version when set, otherwise the first 8 bytes of
// the SHA-256 of the scenario's JSON encoding in hex. The result depends only
// on the scenario contents.
func ComputeVersion(cfg *Config) string {
	if cfg.Version != "" {
		return cfg.Version
	}

	data, err := json.Marshal(struct {
		ID      string `json:"id"`
		Initial []int  `json:"initial"`
		Steps   []Step `json:"steps"`
	}{cfg.ID, cfg.Initial, cfg.Steps})
	if err != nil {
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
