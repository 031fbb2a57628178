package vault

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var metrics = []prometheus.Collector{
	plainReads,
	failedReads,
	encryptFallbacks,
}

var plainReads = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "vault_plain_reads_total",
		Help: "How many stored amounts were read as plain values instead of ciphertext.",
	},
)

var failedReads = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "vault_failed_reads_total",
		Help: "How many stored amounts could not be decrypted or parsed and were read as zero.",
	},
)

var encryptFallbacks = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "vault_encrypt_fallbacks_total",
		Help: "How many amounts were stored as plain values because encryption failed.",
	},
)

// RegisterMetrics registers the vault's collectors with the default
// Prometheus registry.
func RegisterMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", c)
		}
	}

	return nil
}

// UnregisterMetrics unregisters all vault collectors.
//
// This is needed to cleanly exit.
func UnregisterMetrics() bool {
	for _, c := range metrics {
		if ok := prometheus.Unregister(c); !ok {
			return false
		}
	}

	return true
}
