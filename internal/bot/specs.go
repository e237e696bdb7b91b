package bot

import "strings"

// parseSpecs folds free text into a specifications map: each "key: value" line
// becomes one entry, values keep any further colons. Lines without a colon are
// dropped; skipped reports how many.
func parseSpecs(text string) (specs map[string]string, skipped int) {
	specs = make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			skipped++
			continue
		}

		specs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return specs, skipped
}
