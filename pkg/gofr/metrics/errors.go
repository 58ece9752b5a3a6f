// Package metrics registers application metrics on a prometheus registry and serves them.
package metrics

import "fmt"

type metricsAlreadyRegistered struct {
	metricsName string
}

type metricsNotRegistered struct {
	metricsName string
}

type labelsMismatch struct {
	metricsName string
	labels      []string
}

func (e metricsAlreadyRegistered) Error() string {
	return fmt.Sprintf("Metrics %v already registered", e.metricsName)
}

func (e metricsNotRegistered) Error() string {
	return fmt.Sprintf("Metrics %v is not registered", e.metricsName)
}

func (e labelsMismatch) Error() string {
	return fmt.Sprintf("Metrics %v used with labels %v, they must come as name, value pairs with the names "+
		"of the first use", e.metricsName, e.labels)
}
