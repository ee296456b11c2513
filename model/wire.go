package model

import (
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
)

// WireContext back-fills shared context references onto every registered
// entity that requires them, exactly once, at end of run. Organism and
// strain come from the README context when it carries them; otherwise
// they are derived from the conventional gensp.strain identifier prefix
// (family files span organisms and have no single README organism). An
// entity left without a required reference is an internal invariant
// violation and aborts the run.
func (r *Registry) WireContext(ctx *Context) error {
	if ctx == nil {
		ctx = &Context{}
	}

	for _, f := range r.familyOrder {
		if f.DataSet == nil {
			f.DataSet = ctx.DataSet
		}
		if !f.Size.Valid && len(f.Proteins) > 0 {
			f.Size = null.IntFrom(int64(len(f.Proteins)))
		}
	}
	for _, s := range r.panGeneSetOrder {
		if s.DataSet == nil {
			s.DataSet = ctx.DataSet
		}
	}

	for _, g := range r.geneOrder {
		org, strain, err := r.resolve(ctx, "Gene", g.PrimaryIdentifier, g.Organism, g.Strain)
		if err != nil {
			return err
		}
		g.Organism, g.Strain = org, strain
		if g.DataSet == nil {
			g.DataSet = ctx.DataSet
		}
	}

	for _, p := range r.proteinOrder {
		org, strain, err := r.resolve(ctx, "Protein", p.PrimaryIdentifier, p.Organism, p.Strain)
		if err != nil {
			return err
		}
		p.Organism, p.Strain = org, strain
		if p.DataSet == nil {
			p.DataSet = ctx.DataSet
		}
	}

	for _, s := range r.sampleOrder {
		org, strain, err := r.resolve(ctx, "GenotypingSample", s.Identifier, s.Organism, s.Strain)
		if err != nil {
			return err
		}
		s.Organism, s.Strain = org, strain
		if s.DataSet == nil {
			s.DataSet = ctx.DataSet
		}
	}

	for _, m := range r.markerOrder {
		org, strain, err := r.resolve(ctx, "GeneticMarker", m.Identifier, m.Organism, m.Strain)
		if err != nil {
			return err
		}
		m.Organism, m.Strain = org, strain
		if m.DataSet == nil {
			m.DataSet = ctx.DataSet
		}
	}

	for _, p := range r.phenotypeOrder {
		org, strain, err := r.resolve(ctx, "Phenotype", p.PrimaryIdentifier, p.Organism, p.Strain)
		if err != nil {
			return err
		}
		p.Organism, p.Strain = org, strain
		if p.DataSet == nil {
			p.DataSet = ctx.DataSet
		}
	}

	for _, s := range r.studyOrder {
		if s.DataSet == nil {
			s.DataSet = ctx.DataSet
		}
	}
	for _, p := range r.pathwayOrder {
		if p.DataSet == nil {
			p.DataSet = ctx.DataSet
		}
	}
	for _, m := range r.matchOrder {
		if m.DataSet == nil {
			m.DataSet = ctx.DataSet
		}
	}
	for _, m := range r.hmmMatchOrder {
		if m.DataSet == nil {
			m.DataSet = ctx.DataSet
		}
	}
	for _, c := range r.chromosomeOrder {
		if c.Organism == nil {
			c.Organism = ctx.Organism
		}
		if c.Strain == nil {
			c.Strain = ctx.Strain
		}
	}

	return nil
}

// resolve picks organism and strain for one entity: already-set values
// win, then the README context, then derivation from the identifier
// prefix. Failure to resolve either is fatal.
func (r *Registry) resolve(ctx *Context, kind, id string, org *Organism, strain *Strain) (*Organism, *Strain, error) {
	if org == nil {
		org = ctx.Organism
	}
	if strain == nil {
		strain = ctx.Strain
	}
	if org != nil && strain != nil {
		return org, strain, nil
	}

	derivedOrg, derivedStrain, ok := r.contextFor(id)
	if org == nil {
		if !ok {
			return nil, nil, lisgraph.ReferenceResolutionError{Kind: kind, Identifier: id, Missing: "organism"}
		}
		org = derivedOrg
	}
	if strain == nil {
		if !ok {
			return nil, nil, lisgraph.ReferenceResolutionError{Kind: kind, Identifier: id, Missing: "strain"}
		}
		strain = derivedStrain
	}

	return org, strain, nil
}
