package check

import (
	"fmt"
	"strings"

	"github.com/doeshing/check-cdap/internal/domain"
)

// Aggregate reduces per-service statuses to one verdict: CRITICAL if any
// status contains NOTOK, OK otherwise.
func Aggregate(statuses []domain.ServiceStatus) domain.Result {
	var unhealthy []string
	for _, s := range statuses {
		if !s.Healthy() {
			unhealthy = append(unhealthy, s.String())
		}
	}

	var result domain.Result
	if len(unhealthy) > 0 {
		result = domain.Critical(domain.MsgServicesNotOK, strings.Join(unhealthy, ", "))
	} else {
		result = domain.OK(domain.MsgAllServicesOK)
	}
	result.PerfData = perfData(len(statuses), len(unhealthy))
	return result
}

func perfData(total, notOK int) string {
	return fmt.Sprintf("services=%d;;;0 notok=%d;;;0", total, notOK)
}
