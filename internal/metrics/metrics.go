// Package metrics defines the custom Prometheus metrics of the campus
// experience API. HTTP request metrics come from the echoprometheus middleware;
// the collectors here cover what that middleware cannot see.
//
// The collectors are created unregistered; Register attaches them to the
// registry the router exposes on /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campusxp"

// factory builds collectors without registering them anywhere.
var factory = promauto.With(nil)

// ── Gatekeeper ────────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the gatekeeper.
// Label:
//   - reason: "missing_authorization", "malformed_authorization", "bad_credentials", "missing_headers"
var AuthFailuresTotal = factory.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the api key gatekeeper.",
	},
	[]string{"reason"},
)

// ── Users ─────────────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts that got past payload validation.
// Label:
//   - result: "ok", "email_taken", "unknown_university", "email_domain"
var RegistrationsTotal = factory.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// IdentityFailuresTotal counts failed identity provider steps.
// Label:
//   - op: the step that failed (e.g. "create account", "set custom claims")
var IdentityFailuresTotal = factory.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_failures_total",
		Help:      "Total number of identity provider operations that failed.",
	},
	[]string{"op"},
)

// ── Experiences ───────────────────────────────────────────────────────────────

// ExperienceMutationsTotal counts successful experience writes.
// Label:
//   - op: "create", "update" or "delete"
var ExperienceMutationsTotal = factory.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "experience_mutations_total",
		Help:      "Total number of experience writes, by operation.",
	},
	[]string{"op"},
)

// OwnershipDenialsTotal counts update/delete attempts by someone other than the owner.
var OwnershipDenialsTotal = factory.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_denials_total",
		Help:      "Total number of experience writes rejected because the caller is not the owner.",
	},
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AuthFailuresTotal,
		RegistrationsTotal,
		IdentityFailuresTotal,
		ExperienceMutationsTotal,
		OwnershipDenialsTotal,
	}
}

// Register adds every collector to reg. Registering twice with the same
// registry is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
