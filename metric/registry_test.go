package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
)

func TestCoreMetricsRegistered(t *testing.T) {
	reg := NewMetricsRegistry()
	m := reg.CoreMetrics()

	m.RecordClassCompiled("run1", "ok")
	m.RecordClassCompiled("run1", "failed")
	m.RecordCompileError("run1", "invalid")
	m.RecordCompileDuration("run1", 25*time.Millisecond)
	m.RecordRunStatus("run1", 2)
	m.RecordWrite("Pose")
	m.RecordReadFailure("Pose")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClassesCompiled.WithLabelValues("run1", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CompileErrors.WithLabelValues("run1", "invalid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunStatus.WithLabelValues("run1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WriteOperations.WithLabelValues("Pose")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReadFailures.WithLabelValues("Pose")))
}

func TestRegisterCollector(t *testing.T) {
	reg := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "app_renders_total",
		Help: "Renderer invocations",
	})
	require.NoError(t, reg.RegisterCollector("renderer", "renders", counter))

	err := reg.RegisterCollector("renderer", "renders", counter)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	assert.True(t, reg.Unregister("renderer", "renders"))
	assert.False(t, reg.Unregister("renderer", "renders"))
}
