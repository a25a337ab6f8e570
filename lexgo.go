package lexgo

import (
	"context"
	"path/filepath"
	"time"

	"github.com/hupe1980/lexgo/blobstore"
	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/query"
)

// Match is one query hit: the match starts at token position Start,
// spans Length consecutive tokens and lies entirely inside sentence
// Sentence. The layout is stable across versions.
type Match struct {
	Sentence int
	Start    int
	Length   int
}

// Lexgo is an embedded corpus query engine. The corpus is immutable
// once loaded, so a Lexgo instance is safe for concurrent use.
type Lexgo struct {
	corpus *corpus.Corpus
	opts   options
}

// New wraps an already-built corpus.
func New(c *corpus.Corpus, optFns ...Option) *Lexgo {
	return &Lexgo{
		corpus: c,
		opts:   applyOptions(optFns),
	}
}

// Open fetches the named corpus from a blob store, ingests it and
// builds the attribute indices.
func Open(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Lexgo, error) {
	opts := applyOptions(optFns)
	start := time.Now()

	rc, err := store.Open(ctx, name)
	if err != nil {
		opts.logger.LogLoad(ctx, name, 0, 0, 0, err)
		opts.metricsCollector.RecordLoad(0, time.Since(start), err)
		return nil, err
	}
	defer rc.Close()

	c, err := corpus.Read(rc)
	duration := time.Since(start)
	if err != nil {
		opts.logger.LogLoad(ctx, name, 0, 0, duration, err)
		opts.metricsCollector.RecordLoad(0, duration, err)
		return nil, err
	}

	opts.logger.LogLoad(ctx, name, c.Len(), c.Sentences(), duration, nil)
	opts.metricsCollector.RecordLoad(c.Len(), duration, nil)

	return &Lexgo{corpus: c, opts: opts}, nil
}

// OpenFile is Open against the local file system.
func OpenFile(ctx context.Context, path string, optFns ...Option) (*Lexgo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	store := blobstore.NewLocal(filepath.Dir(abs))
	return Open(ctx, store, filepath.Base(abs), optFns...)
}

// Corpus exposes the underlying corpus, e.g. for rendering matches.
func (lx *Lexgo) Corpus() *corpus.Corpus { return lx.corpus }

// Compile parses query text against the corpus dictionary. In strict
// mode (the default) a literal value absent from the dictionary is an
// ErrUnknownValue; with WithLenientLookup it compiles to an empty
// posting list instead.
func (lx *Lexgo) Compile(text string) (query.Query, error) {
	start := time.Now()

	var (
		q   query.Query
		err error
	)
	if lx.opts.lenient {
		q, err = query.ParseLenient(text, lx.corpus.Dict())
	} else {
		q, err = query.Parse(text, lx.corpus.Dict())
	}
	err = translateError(err)

	lx.opts.logger.LogCompile(context.Background(), text, len(q), err)
	lx.opts.metricsCollector.RecordCompile(time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Query compiles and evaluates text in one step.
func (lx *Lexgo) Query(ctx context.Context, text string, evalOptFns ...EvalOption) ([]Match, error) {
	q, err := lx.Compile(text)
	if err != nil {
		return nil, err
	}
	return lx.Evaluate(ctx, q, evalOptFns...)
}
