package engine

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks per-stage latency and statement counts of an Engine
type Metrics struct {
	lexLatency   prometheus.Summary
	parseLatency prometheus.Summary
	planLatency  prometheus.Summary
	execLatency  prometheus.Summary

	statements  *prometheus.CounterVec
	parseErrors prometheus.Counter
}

// NewMetrics builds the engine metrics and registers them on reg.
// A nil reg leaves them unregistered but still usable. On a registration
// error the returned Metrics are still usable; the failed collectors just
// stay unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		lexLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "minisql_lex_latency_ns",
				Help: "latency to tokenize a statement",
			},
		),
		parseLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "minisql_parse_latency_ns",
				Help: "latency to parse a statement",
			},
		),
		planLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "minisql_plan_latency_ns",
				Help: "latency to build a plan from a statement",
			},
		),
		execLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "minisql_exec_latency_ns",
				Help: "latency to dispatch a plan to its handler",
			},
		),
		statements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minisql_statements_total",
				Help: "number of planned statements by plan node type",
			},
			[]string{"kind"},
		),
		parseErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "minisql_parse_errors_total",
				Help: "number of statements rejected by the lexer or parser",
			},
		),
	}

	if reg == nil {
		return m, nil
	}

	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	m.lexLatency, err = register(reg, m.lexLatency)
	check(err)
	m.parseLatency, err = register(reg, m.parseLatency)
	check(err)
	m.planLatency, err = register(reg, m.planLatency)
	check(err)
	m.execLatency, err = register(reg, m.execLatency)
	check(err)
	m.statements, err = register(reg, m.statements)
	check(err)
	m.parseErrors, err = register(reg, m.parseErrors)
	check(err)

	return m, errors.Join(errs...)
}

// register adds c to reg. When an identical collector is already there,
// for example from another Engine sharing the registry, that one is
// returned so both engines feed the same series.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, err
}
