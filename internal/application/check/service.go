package check

import (
	"context"
	"strings"

	configapp "github.com/doeshing/check-cdap/internal/application/config"
	"github.com/doeshing/check-cdap/internal/domain"
	"github.com/doeshing/check-cdap/internal/ports"
)

// Service runs one status check.
type Service struct {
	Fetcher ports.StatusFetcher
	Logger  ports.Logger
}

// Run validates cfg, queries the status endpoint and interprets the answer.
// Every failure is folded into the returned Result.
func (s *Service) Run(ctx context.Context, cfg domain.Config) domain.Result {
	if err := configapp.Validate(cfg); err != nil {
		s.Logger.Error("invalid configuration", err, nil)
		return domain.Unknown("%v", err)
	}

	url := domain.StatusURL(cfg.URI)
	req := domain.StatusRequest{
		URL:      url,
		Token:    strings.TrimSpace(cfg.Token),
		Insecure: cfg.Insecure,
		Timeout:  cfg.Timeout(),
	}

	s.Logger.Debug("requesting service status", map[string]interface{}{
		"url":      url,
		"timeout":  req.Timeout.String(),
		"insecure": req.Insecure,
		"token":    cfg.HasToken(),
	})

	resp, fetchErr := s.Fetcher.Fetch(ctx, req)
	if fetchErr != nil {
		s.Logger.Error("status request failed", fetchErr, map[string]interface{}{"url": url})
		resp.Code = 0
	}

	fields := map[string]interface{}{
		"url":        url,
		"code":       resp.Code,
		"request_id": resp.RequestID,
	}
	result, proceed := Triage(resp.Code, url, cfg.HasToken())
	if !proceed {
		s.Logger.Error("status endpoint did not answer 200", &domain.HTTPError{Code: resp.Code, URL: url}, fields)
		if fetchErr != nil {
			result.Message += ": " + transportCause(fetchErr)
		}
		return result
	}
	s.Logger.Debug("received service status", fields)

	statuses, err := ParseServiceStatuses(string(resp.Body))
	if err != nil {
		s.Logger.Error("parse status body", err, map[string]interface{}{"body": string(resp.Body)})
		return domain.Critical(domain.MsgMalformed, strings.TrimPrefix(err.Error(), domain.ErrMalformedResponse.Error()+": "))
	}

	for _, st := range statuses {
		s.Logger.Debug("service status", map[string]interface{}{"service": st.Name, "status": st.Status})
	}
	return Aggregate(statuses)
}

// transportCause drops the ErrUnreachable prefix, leaving e.g.
// "dial tcp 10.0.0.5:11015: connect: connection refused".
func transportCause(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrUnreachable.Error()+": ")
}
