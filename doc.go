// Package lexgo provides an embedded corpus query engine for Go.
//
// Lexgo answers positional-pattern searches over an annotated token
// stream. Every token carries four categorical attributes (word, c5
// tag, lemma, pos tag); a query is a contiguous sequence of bracketed
// token constraints and the engine returns every corpus position where
// the pattern matches, with sentence attribution.
//
// # Quick Start
//
//	ctx := context.Background()
//	lx, _ := lexgo.OpenFile(ctx, "bnc-05M.csv")
//
//	matches, _ := lx.Query(ctx, `[lemma="house" pos!="VERB"]`)
//	for _, m := range matches {
//	    fmt.Println(m.Sentence, m.Start, m.Length)
//	}
//
// Corpora can also be fetched from any blobstore.Store implementation:
//
//	store, _ := s3.New(ctx, "my-bucket")
//	lx, _ := lexgo.Open(ctx, store, "corpora/bnc-05M.csv.gz")
//
// gzip, zstd and lz4 compressed corpus files are detected and
// decompressed transparently.
//
// # Query Language
//
// A query is a sequence of clauses; each clause constrains one token
// and consecutive clauses constrain consecutive tokens:
//
//	[word="the"] [] []            three tokens starting with "the"
//	[lemma="house" pos!="VERB"]   one token, conjunction of literals
//	[]                            any single token
//
// Attributes are word, c5, lemma and pos; operators are = and != with
// double-quoted values. Values are matched by exact equality against
// the corpus dictionary.
//
// # Execution Model
//
// Attribute equality is answered from per-attribute posting indices;
// literal and clause results are combined through a set algebra over
// three physical representations (dense interval, index view,
// materialized vector) with deferred complements, and an intersection
// planner that reduces smallest-first. Once loaded, a corpus is
// immutable and safe for concurrent queries.
package lexgo
