package check

import (
	"fmt"
	"strings"

	"github.com/doeshing/check-cdap/internal/domain"
)

// ParseServiceStatuses reads a flat object of "name":"STATUS" pairs. It is
// deliberately not a JSON decoder: every pair must be a quoted string on
// both sides, and anything else is reported as malformed.
func ParseServiceStatuses(body string) ([]domain.ServiceStatus, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty body", domain.ErrMalformedResponse)
	}
	if strings.HasPrefix(trimmed, "{") != strings.HasSuffix(trimmed, "}") {
		return nil, fmt.Errorf("%w: unbalanced braces", domain.ErrMalformedResponse)
	}
	trimmed = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "{"), "}"))
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, ",")
	statuses := make([]domain.ServiceStatus, 0, len(parts))
	for i, part := range parts {
		status, err := parsePair(part)
		if err != nil {
			return nil, fmt.Errorf("%w: pair %d: %v", domain.ErrMalformedResponse, i+1, err)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func parsePair(pair string) (domain.ServiceStatus, error) {
	rawName, rawStatus, err := splitPair(pair)
	if err != nil {
		return domain.ServiceStatus{}, err
	}
	name, err := unquote(rawName)
	if err != nil {
		return domain.ServiceStatus{}, fmt.Errorf("name %w", err)
	}
	status, err := unquote(rawStatus)
	if err != nil {
		return domain.ServiceStatus{}, fmt.Errorf("status of %q %w", name, err)
	}
	return domain.ServiceStatus{Name: name, Status: status}, nil
}

// splitPair cuts at the first ':' after the name's closing quote, so names
// may contain colons.
func splitPair(pair string) (string, string, error) {
	trimmed := strings.TrimSpace(pair)
	if !strings.HasPrefix(trimmed, `"`) {
		return "", "", fmt.Errorf("name not quoted: %q", trimmed)
	}
	end := strings.Index(trimmed[1:], `"`)
	if end < 0 {
		return "", "", fmt.Errorf("name not quoted: %q", trimmed)
	}
	rawName, rest := trimmed[:end+2], strings.TrimSpace(trimmed[end+2:])
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' in %q", trimmed)
	}
	return rawName, rest[1:], nil
}

func unquote(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < 2 || !strings.HasPrefix(raw, `"`) || !strings.HasSuffix(raw, `"`) {
		return "", fmt.Errorf("not quoted: %q", raw)
	}
	value := strings.TrimSpace(raw[1 : len(raw)-1])
	if value == "" {
		return "", fmt.Errorf("is empty")
	}
	return value, nil
}
