package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/production/internal/infrastructure/config"
	"github.com/erp/production/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// observability bundles the exporters started for one server process
type observability struct {
	tracer   *telemetry.TracerProvider
	meter    *telemetry.MeterProvider
	logs     *telemetry.LoggerProvider
	profiler *telemetry.Profiler
}

// setupObservability starts tracing, metrics, log export and profiling.
// The returned logger is bridged to the collector when log export is on.
func setupObservability(ctx context.Context, cfg *config.Config, log *zap.Logger) (*observability, *zap.Logger, error) {
	otelCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}

	o := &observability{}
	var err error
	if o.tracer, err = telemetry.NewTracerProvider(ctx, otelCfg, log); err != nil {
		return nil, nil, fmt.Errorf("tracer provider: %w", err)
	}
	if o.meter, err = telemetry.NewMeterProvider(ctx, otelCfg, cfg.Telemetry.MetricsInterval, log); err != nil {
		return nil, nil, fmt.Errorf("meter provider: %w", err)
	}

	logsCfg := otelCfg
	logsCfg.Enabled = otelCfg.Enabled && cfg.Telemetry.LogsEnabled
	if o.logs, err = telemetry.NewLoggerProvider(ctx, logsCfg, log); err != nil {
		return nil, nil, fmt.Errorf("logger provider: %w", err)
	}
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	log = o.logs.Bridge(log, level)

	o.profiler, err = telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Profiling.Enabled,
		ServerAddress:     cfg.Profiling.ServerAddress,
		ApplicationName:   cfg.Telemetry.ServiceName,
		BasicAuthUser:     cfg.Profiling.BasicAuthUser,
		BasicAuthPassword: cfg.Profiling.BasicAuthPassword,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("profiler: %w", err)
	}
	if cfg.Profiling.SpanProfiles && o.profiler.IsEnabled() {
		o.tracer.EnableSpanProfiles()
	}

	return o, log, nil
}

// shutdown flushes every exporter; errors are joined
func (o *observability) shutdown(ctx context.Context) error {
	return errors.Join(
		o.tracer.Shutdown(ctx),
		o.meter.Shutdown(ctx),
		o.logs.Shutdown(ctx),
		o.profiler.Stop(),
	)
}
