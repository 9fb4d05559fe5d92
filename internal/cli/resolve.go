package cli

import (
	"fmt"
	"strings"
)

// resolveID matches user input against a set of entities: exact ID,
// then ID prefix, then exact name (case-insensitive), then unique name
// prefix. Ambiguity is an error, not a guess.
func resolveID(kind, input string, ids []string, names []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}

	for i, name := range names {
		if strings.EqualFold(name, input) {
			return ids[i], nil
		}
	}
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(input)) {
			matches = append(matches, ids[i])
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s name %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
