// Package metrics exposes prometheus collectors for the recharge flow and
// the /metrics handler.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RechargesTotal counts completed recharges by resulting status.
	RechargesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recharges_total",
		Help: "Completed recharge transactions by status.",
	}, []string{"status"})

	// RechargeFailuresTotal counts recharge attempts rejected or failed.
	RechargeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recharge_failures_total",
		Help: "Recharge attempts that did not produce a transaction.",
	})
)

// Handler wraps the prometheus HTTP handler for gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
