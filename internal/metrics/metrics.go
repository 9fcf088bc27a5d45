package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring service health and performance
var (
	CouriersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "couriers_created_total",
			Help: "Total number of couriers registered",
		},
	)

	ParcelsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parcels_created_total",
			Help: "Total number of parcels registered",
		},
	)

	DeliveriesRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deliveries_recorded_total",
			Help: "Total number of delivery proofs recorded",
		},
	)

	GeocodeFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "geocode_failures_total",
			Help: "Total number of reverse geocoding lookups that fell back to the unavailable address",
		},
	)

	OrphanPhotosRemovedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orphan_photos_removed_total",
			Help: "Total number of orphaned delivery photos removed by the cleanup job",
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(CouriersCreatedTotal)
	prometheus.MustRegister(ParcelsCreatedTotal)
	prometheus.MustRegister(DeliveriesRecordedTotal)
	prometheus.MustRegister(GeocodeFailuresTotal)
	prometheus.MustRegister(OrphanPhotosRemovedTotal)
}
