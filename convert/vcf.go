package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brentp/vcfgo"
	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/lisfile"
)

// VCF converts variant-call genotyping files: the header declares the
// study's samples, each record becomes a genetic marker plus a
// genotyping record, and per-sample genotype and likelihood strings
// become Genotype values keyed by (sample, record). The README is
// mandatory: it names the study and carries the organism context, since
// sample names are arbitrary.
type VCF struct{}

func (c *VCF) Kind() lisfile.Kind { return lisfile.KindVCF }

func (c *VCF) RequiresMetadata() bool { return true }

func (c *VCF) RequiredKeys() []string {
	return []string{"identifier", "synopsis", "description", "taxid", "scientific_name_abbrev", "genotype"}
}

func (c *VCF) Scan(name string, r io.Reader, run *Run) error {
	rdr, err := vcfgo.NewReader(bufio.NewReaderSize(r, scanBufferSize), false)
	if err != nil {
		return pfx.Err(lisgraph.ParseError{File: name, Msg: "invalid VCF header: " + err.Error()})
	}

	md := run.md
	study := run.reg.GenotypingStudy(md.Identifier)
	study.Synopsis = null.StringFrom(md.Synopsis)
	study.Description = null.StringFrom(md.Description)
	if md.Contributors != "" {
		study.Contributors = null.StringFrom(md.Contributors)
	}
	if md.Bioproject != "" {
		study.Accession = null.StringFrom(md.Bioproject)
	}
	if md.GenotypingPlatform != "" {
		study.Platform = null.StringFrom(md.GenotypingPlatform)
	}

	for _, sampleName := range rdr.Header.SampleNames {
		sample := run.reg.GenotypingSample(sampleName)
		sample.Study = study
		study.AddSample(sample)
	}

	for i := 1; ; i++ {
		variant := rdr.Read()
		if variant == nil {
			break
		}

		contig := variant.Chrom()
		if contig == "" {
			return lisgraph.ValidationError{File: name, Line: i, Record: true, Field: "contig"}
		}
		chrom := run.reg.Chromosome(contig)

		markerID := variant.Id()
		if markerID == "" || markerID == "." {
			markerID = fmt.Sprintf("%s_%d", contig, variant.Pos)
		}

		marker := run.reg.GeneticMarker(markerID)
		marker.Chromosome = chrom
		loc := run.reg.Location(fmt.Sprintf("%s:%d", contig, variant.Pos))
		loc.Start = int(variant.Pos)
		loc.End = int(variant.Pos) + len(variant.Ref()) - 1
		loc.Chromosome = chrom
		marker.Location = loc

		rec := run.reg.GenotypingRecord(markerID)
		rec.Ref = variant.Ref()
		rec.Alt = strings.Join(variant.Alt(), ",")
		rec.Qual = null.FloatFrom(float64(variant.Quality))
		if variant.Filter != "" && variant.Filter != "." {
			rec.Filter = null.StringFrom(variant.Filter)
		}
		if info := variant.Info().String(); info != "" {
			rec.Info = null.StringFrom(info)
		}
		rec.Marker = marker
		rec.Study = study

		if err := variant.Header.ParseSamples(variant); err != nil {
			return pfx.Err(lisgraph.ParseError{File: name, Msg: fmt.Sprintf("record %d (%s:%d): %s", i, contig, variant.Pos, err)})
		}

		for si, sample := range variant.Samples {
			if sample == nil {
				continue
			}
			sampleName := rdr.Header.SampleNames[si]

			gt := run.reg.Genotype(sampleName, markerID)
			gt.Sample = run.reg.GenotypingSample(sampleName)
			gt.Record = rec
			gt.Value = genotypeString(sample)
			if len(sample.GL) > 0 {
				gt.Likelihoods = null.StringFrom(joinFloats(sample.GL))
			} else if pl, ok := sample.Fields["PL"]; ok && pl != "" {
				gt.Likelihoods = null.StringFrom(pl)
			}
		}

		run.countData(name)
	}

	if err := rdr.Error(); err != nil {
		return pfx.Err(lisgraph.ParseError{File: name, Msg: err.Error()})
	}

	return nil
}

// genotypeString renders an allele-index genotype back to its VCF form,
// e.g. 0/1 or 1|1, with . for missing calls.
func genotypeString(sample *vcfgo.SampleGenotype) string {
	if len(sample.GT) == 0 {
		return "."
	}

	sep := "/"
	if sample.Phased {
		sep = "|"
	}

	alleles := make([]string, 0, len(sample.GT))
	for _, gt := range sample.GT {
		if gt < 0 {
			alleles = append(alleles, ".")
			continue
		}
		alleles = append(alleles, strconv.Itoa(gt))
	}

	return strings.Join(alleles, sep)
}

func joinFloats(vals []float64) string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, strconv.FormatFloat(v, 'g', -1, 64))
	}

	return strings.Join(out, ",")
}
