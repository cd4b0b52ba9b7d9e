package domain

import "strings"

// UnhealthyMarker is the sentinel a CDAP system service reports when it is down.
const UnhealthyMarker = "NOTOK"

// ServiceStatus is one name/status pair reported by the status endpoint.
type ServiceStatus struct {
	Name   string
	Status string
}

// Healthy reports whether the status is free of the NOTOK marker.
func (s ServiceStatus) Healthy() bool {
	return !strings.Contains(s.Status, UnhealthyMarker)
}

// String renders the pair as name=STATUS.
func (s ServiceStatus) String() string {
	return s.Name + "=" + s.Status
}
