package check

import (
	"net/http"

	"github.com/doeshing/check-cdap/internal/domain"
)

// Triage maps the HTTP status of the status endpoint to a verdict. It
// returns proceed=true only for 200, in which case the body must be parsed.
// Code 0 stands for "no response", as curl reports it.
func Triage(code int, url string, tokenSupplied bool) (result domain.Result, proceed bool) {
	switch code {
	case http.StatusOK:
		return domain.Result{}, true
	case http.StatusUnauthorized:
		if tokenSupplied {
			return domain.Unknown(domain.MsgAuthRejected), false
		}
		return domain.Unknown(domain.MsgAuthRequired), false
	case http.StatusNotFound:
		return domain.Critical(domain.MsgEndpointNotFound, url), false
	case 0, http.StatusServiceUnavailable:
		return domain.Unknown(domain.MsgServiceDown, code), false
	default:
		return domain.Unknown(domain.MsgUnexpectedStatus, code, url), false
	}
}
