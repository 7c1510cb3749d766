package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/milk9111/weaponhandling/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
