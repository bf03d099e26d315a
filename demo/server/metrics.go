package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "h3abi_demo_requests_total",
		Help: "Total number of layer requests",
	}, []string{"endpoint"})
	requestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "h3abi_demo_request_duration_ms",
		Help:    "Layer request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"endpoint"})
	resultCodesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "h3abi_demo_result_codes_total",
		Help: "Grid disk result codes by name",
	}, []string{"code"})
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDurationMs)
	prometheus.MustRegister(resultCodesTotal)
}
