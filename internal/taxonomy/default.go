// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

// Built-in field taxonomy covering the full arXiv category list,
// https://arxiv.org/category_taxonomy.
var defaultFields = []Field{
	{
		Name: "Computer Science",
		Codes: []string{
			"cs.AI", "cs.AR", "cs.CC", "cs.CE", "cs.CG", "cs.CL", "cs.CR", "cs.CV",
			"cs.CY", "cs.DB", "cs.DC", "cs.DL", "cs.DM", "cs.DS", "cs.ET", "cs.FL",
			"cs.GL", "cs.GR", "cs.GT", "cs.HC", "cs.IR", "cs.IT", "cs.LG", "cs.LO",
			"cs.MA", "cs.MM", "cs.MS", "cs.NA", "cs.NE", "cs.NI", "cs.OS",
			"cs.PF", "cs.PL", "cs.RO", "cs.SC", "cs.SD", "cs.SE", "cs.SI", "cs.SY",
		},
		DefaultKeywords: []string{"large language models", "multi-agent systems"},
	},
	{
		Name: "Mathematics",
		Codes: []string{
			"math.AC", "math.AG", "math.AP", "math.AT", "math.CA", "math.CO",
			"math.CT", "math.CV", "math.DG", "math.DS", "math.FA", "math.GM",
			"math.GN", "math.GR", "math.GT", "math.HO", "math.IT", "math.KT",
			"math.LO", "math.MG", "math.MP", "math.NA", "math.NT", "math.OA",
			"math.OC", "math.PR", "math.QA", "math.RA", "math.RT", "math.SG",
			"math.SP", "math.ST",
		},
	},
	{
		Name: "Physics",
		Codes: []string{
			// physics archive
			"physics.acc-ph", "physics.ao-ph", "physics.app-ph", "physics.atm-clus",
			"physics.atom-ph", "physics.bio-ph", "physics.chem-ph", "physics.class-ph",
			"physics.comp-ph", "physics.data-an", "physics.ed-ph", "physics.flu-dyn",
			"physics.gen-ph", "physics.geo-ph", "physics.hist-ph", "physics.ins-det",
			"physics.med-ph", "physics.optics", "physics.plasm-ph", "physics.pop-ph",
			"physics.soc-ph", "physics.space-ph",

			// high energy physics
			"hep-ex", "hep-lat", "hep-ph", "hep-th",

			// mathematical physics
			"math-ph",

			// condensed matter
			"cond-mat.dis-nn", "cond-mat.mes-hall", "cond-mat.mtrl-sci",
			"cond-mat.other", "cond-mat.quant-gas", "cond-mat.soft",
			"cond-mat.stat-mech", "cond-mat.str-el", "cond-mat.supr-con",

			// astrophysics
			"astro-ph.CO", "astro-ph.GA", "astro-ph.EP", "astro-ph.HE",
			"astro-ph.IM", "astro-ph.SR",

			// general relativity and quantum
			"gr-qc", "quant-ph",

			// nonlinear sciences
			"nlin.AO", "nlin.CD", "nlin.CG", "nlin.PS", "nlin.SI",

			// nuclear
			"nucl-ex", "nucl-th",
		},
	},
	{
		Name:  "Statistics",
		Codes: []string{"stat.AP", "stat.CO", "stat.ME", "stat.ML", "stat.OT", "stat.TH"},
	},
	{
		Name:  "Electrical Engineering & Systems Science",
		Codes: []string{"eess.AS", "eess.IV", "eess.SP", "eess.SY"},
	},
	{
		Name: "Quantitative Biology",
		Codes: []string{
			"q-bio.BM", "q-bio.CB", "q-bio.GN", "q-bio.MN", "q-bio.NC",
			"q-bio.OT", "q-bio.PE", "q-bio.QM", "q-bio.SC", "q-bio.TO",
		},
	},
	{
		Name: "Quantitative Finance",
		Codes: []string{
			"q-fin.CP", "q-fin.EC", "q-fin.GN", "q-fin.MF", "q-fin.PM",
			"q-fin.PR", "q-fin.RM", "q-fin.ST", "q-fin.TR",
		},
	},
	{
		Name:  "Economics",
		Codes: []string{"econ.EM", "econ.GN", "econ.TH"},
	},
}

// Default returns the built-in taxonomy. The field list is validated at
// package init, so Default never fails.
func Default() *Taxonomy {
	return defaultTaxonomy
}

var defaultTaxonomy *Taxonomy

func init() {
	t, err := New(defaultFields)
	if err != nil {
		panic("taxonomy: invalid built-in field list: " + err.Error())
	}
	defaultTaxonomy = t
}
