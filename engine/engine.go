// Package engine drives the parallel consumption of a DataSource: one
// DocumentReader per Split, a bounded number of Splits in flight at once.
package engine

import (
	"context"
	"runtime"

	"github.com/gofrs/uuid"
	corpus "github.com/go-corpus/corpus"
	"github.com/go-corpus/corpus/conf"
	"github.com/go-corpus/corpus/datasource"
	"github.com/go-corpus/corpus/errors"
	"github.com/go-corpus/corpus/reader"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Handler consumes each Document produced during a run. The anomaly, when
// non-nil, is the recoverable per-record report for that document. Handlers
// are invoked concurrently across Splits, but sequentially within one Split.
type Handler func(doc *corpus.Document, anomaly *corpus.Anomaly) error

// Conf configures an Engine
type Conf struct {
	Workers int             // number of Splits consumed concurrently. Defaults to runtime.NumCPU()
	Logger  *zerolog.Logger // defaults to the global zerolog logger
	// DocumentFactory overrides how readers obtain document containers, for
	// callers which pool or pre-populate them. Defaults to fresh documents.
	DocumentFactory func() *corpus.Document
}

// Engine consumes every Split of a DataSource, converting records to
// Documents and handing them to a Handler
type Engine struct {
	source      *datasource.DataSource
	conf        *conf.Conf
	workers     int
	logger      zerolog.Logger
	newDocument func() *corpus.Document
}

// CreateEngine returns an Engine over the given DataSource. The reader
// configuration c selects extractors and the key/value separator for every
// Split of the run; nil means defaults throughout.
func CreateEngine(source *datasource.DataSource, c *conf.Conf, econf *Conf) *Engine {
	if econf == nil {
		econf = &Conf{}
	}
	if c == nil {
		c = conf.New()
	}
	workers := econf.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := log.Logger
	if econf.Logger != nil {
		logger = *econf.Logger
	}
	return &Engine{
		source:      source,
		conf:        c,
		workers:     workers,
		logger:      logger,
		newDocument: econf.DocumentFactory,
	}
}

// Run analyzes the DataSource and consumes every planned Split, invoking
// handle for each converted Document. The first error - a configuration
// error at reader construction, an underlying read failure, or a handler
// error - cancels the remainder of the run. Per-record anomalies are logged
// and passed to the handler, but never abort a Split.
func (e *Engine) Run(ctx context.Context, handle Handler) error {
	runID, err := uuid.NewV4()
	if err != nil {
		return err
	}
	logger := e.logger.With().Str("run", runID.String()).Logger()

	splits, err := e.source.Analyze()
	if err != nil {
		return err
	}
	workers := e.workers
	if workers > len(splits) {
		workers = len(splits)
	}
	logger.Info().Int("splits", len(splits)).Int("workers", workers).Msg("starting run")

	g, ctx := errgroup.WithContext(ctx)
	splitCh := make(chan *datasource.Split)
	g.Go(func() error {
		defer close(splitCh)
		for _, split := range splits {
			select {
			case splitCh <- split:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for split := range splitCh {
				if err := e.consumeSplit(ctx, logger, split, handle); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) consumeSplit(ctx context.Context, logger zerolog.Logger, split *datasource.Split, handle Handler) error {
	r, err := reader.CreateDocumentReader(split, e.conf)
	if err != nil {
		return err
	}
	defer r.Close()
	if e.newDocument != nil {
		r.UseDocumentFactory(e.newDocument)
	}
	count := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		doc, anomaly, err := r.NextDocument()
		if err != nil {
			if _, exhausted := err.(errors.NoMoreRecordsError); exhausted {
				logger.Debug().Str("split", split.ToString()).Int("documents", count).Msg("split exhausted")
				return nil
			}
			return err
		}
		if anomaly != nil {
			logger.Warn().Str("split", split.ToString()).Str("key", anomaly.Key).Msg(anomaly.Reason)
		}
		if err := handle(doc, anomaly); err != nil {
			return err
		}
		count++
	}
}
