package convert

import (
	"fmt"
	"io"
	"log"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/model"
	"github.com/legumeinfo/lisgraph/readme"
	"github.com/legumeinfo/lisgraph/sink"
)

// State tracks a run through its lifecycle. Metadata must precede data;
// finalize is reached only when all preconditions hold; nothing is
// emitted before finalize succeeds.
type State int

const (
	StateInit State = iota
	StateMetadataLoaded
	StateDataScanned
	StateFinalized
	StateEmitted
)

// Run is the processing of one cohesive file set: one optional metadata
// record plus one or more data files sharing one context and one set of
// registries. A Run is single-threaded; parallel runs each get their own.
type Run struct {
	conv Converter
	sink sink.Sink

	reg *model.Registry
	ctx *model.Context
	md  *readme.Metadata

	state     State
	dataLines int
}

func NewRun(conv Converter, snk sink.Sink) *Run {
	return &Run{
		conv: conv,
		sink: snk,
		reg:  model.NewRegistry(),
		ctx:  &model.Context{},
	}
}

func (r *Run) State() State { return r.state }

// Registry exposes the run's registries to its converter and tests.
func (r *Run) Registry() *model.Registry { return r.reg }

func (r *Run) Context() *model.Context { return r.ctx }

// Metadata returns the loaded README record, or nil.
func (r *Run) Metadata() *readme.Metadata { return r.md }

// LoadMetadata parses the README record and resolves the shared context.
// It must be called before any data file is scanned.
func (r *Run) LoadMetadata(name string, rd io.Reader) error {
	if r.state != StateInit {
		return fmt.Errorf("%s: metadata must be loaded before any data file", name)
	}

	md, err := readme.Parse(name, rd)
	if err != nil {
		return err
	}
	if err := md.Require(r.conv.RequiredKeys()...); err != nil {
		return err
	}

	r.md = md
	r.ctx = md.Context(r.reg)
	r.state = StateMetadataLoaded

	return nil
}

// ScanFile streams one data file through the run's converter.
func (r *Run) ScanFile(name string, rd io.Reader) error {
	if r.state == StateFinalized || r.state == StateEmitted {
		return fmt.Errorf("%s: run is already finalized", name)
	}
	if r.conv.RequiresMetadata() && r.md == nil {
		return lisgraph.MissingMetadataError{File: name}
	}

	if err := r.conv.Scan(name, rd, r); err != nil {
		return err
	}
	r.state = StateDataScanned

	return nil
}

// countData records one accepted data row and logs progress.
func (r *Run) countData(name string) {
	r.dataLines++
	if r.dataLines%10000 == 0 {
		log.Printf("%s: processed %d data records\n", name, r.dataLines)
	}
}

// Close validates global preconditions, back-fills shared references onto
// every registered entity, and emits the finished graph in dependency
// order. Reaching Close without metadata (when the format requires it) or
// without any scanned data is a fatal abort; the sink sees nothing.
func (r *Run) Close() error {
	if r.state == StateEmitted {
		return fmt.Errorf("run was already emitted")
	}
	if r.conv.RequiresMetadata() && r.md == nil {
		return lisgraph.MissingMetadataError{File: "README"}
	}
	if r.state != StateDataScanned || r.dataLines == 0 {
		return fmt.Errorf("no data records were parsed; this is a configuration error, not an empty dataset")
	}

	if err := r.reg.WireContext(r.ctx); err != nil {
		return err
	}
	r.state = StateFinalized

	if err := r.emit(); err != nil {
		return err
	}
	r.state = StateEmitted

	for kind, n := range r.reg.Counts() {
		if n > 0 {
			log.Printf("stored %d %s\n", n, kind)
		}
	}

	return nil
}

// emit hands the graph to the sink: context objects first, then entities
// with no outgoing mandatory references, then entities referencing other
// freshly created entities.
func (r *Run) emit() error {
	if r.ctx.DataSource != nil {
		if err := r.sink.Store([]*model.DataSource{r.ctx.DataSource}); err != nil {
			return err
		}
	}
	if r.ctx.Publication != nil {
		if err := r.sink.Store([]*model.Publication{r.ctx.Publication}); err != nil {
			return err
		}
	}
	if r.ctx.DataSet != nil {
		if err := r.sink.Store([]*model.DataSet{r.ctx.DataSet}); err != nil {
			return err
		}
	}

	batches := []interface{}{
		r.reg.Organisms(),
		r.reg.Strains(),
		r.reg.GeneFamilies(),
		r.reg.PanGeneSets(),
		r.reg.GenotypingStudies(),
		r.reg.Pathways(),
		r.reg.OntologyTerms(),
		r.reg.Chromosomes(),
		r.reg.Genes(),
		r.reg.Proteins(),
		r.reg.GenotypingSamples(),
		r.reg.GeneticMarkers(),
		r.reg.Phenotypes(),
		r.reg.ProteinMatches(),
		r.reg.ProteinHmmMatches(),
		r.reg.OntologyAnnotations(),
		sink.PathwayGenes(r.reg.Pathways()),
		r.reg.GenotypingRecords(),
		r.reg.Genotypes(),
	}

	for _, batch := range batches {
		if err := r.sink.Store(batch); err != nil {
			return err
		}
	}

	return nil
}
