package scenario

import (
	"fmt"
	"io"
	"strings"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// Similarity kinds.
const (
	SimilarityBinary  = "binary"
	SimilarityDNAFull = "dnafull"
)

// Gap kinds.
const (
	GapLinear      = "linear"
	GapAffine      = "affine"
	GapExponential = "exponential"
)

// ErrInvalidJob is wrapped by every validation failure.
var ErrInvalidJob = errors.New("scenario: invalid job")

// Similarity selects and parameterises a similarity function.
type Similarity struct {
	Kind     string  `yaml:"kind"`
	Match    float64 `yaml:"match"`
	Mismatch float64 `yaml:"mismatch"`
}

// Gap selects and parameterises a gap cost.
type Gap struct {
	Kind   string  `yaml:"kind"`
	Cost   float64 `yaml:"cost"`
	Open   float64 `yaml:"open"`
	Extend float64 `yaml:"extend"`
	Base   float64 `yaml:"base"`
}

// Job is one alignment to run.
type Job struct {
	Name        string     `yaml:"name"`
	Variant     string     `yaml:"variant"`
	S           string     `yaml:"s"`
	T           string     `yaml:"t"`
	Similarity  Similarity `yaml:"similarity"`
	Gap         Gap        `yaml:"gap"`
	ExpectScore *float64   `yaml:"expect_score,omitempty"`
}

// File is the top-level document of a job file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Load decodes a job file. Unknown keys are rejected. The jobs are not
// validated; call Validate.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return &f, nil
}

// Validate checks every job and reports all problems at once.
func (f *File) Validate() error {
	errs := &errors.M{}
	seen := map[string]bool{}
	for i, j := range f.Jobs {
		if seen[j.Name] {
			errs.Append(fmt.Errorf("%w: job %d: duplicate name %q", ErrInvalidJob, i, j.Name))
		}
		seen[j.Name] = true
		errs.Append(j.Validate())
	}

	return errs.Err()
}

// Validate checks that the job names a known variant, that its gap kind fits
// the variant, and that its sequences can be scored.
func (j Job) Validate() error {
	errs := &errors.M{}
	fail := func(format string, args ...any) {
		errs.Append(fmt.Errorf("%w: %s: %s", ErrInvalidJob, j.label(), fmt.Sprintf(format, args...)))
	}
	if strings.TrimSpace(j.Name) == "" {
		fail("missing name")
	}
	v, err := align.ParseVariant(j.Variant)
	if err != nil {
		fail("%v", err)
	}
	switch v {
	case align.VariantNeedlemanWunsch, align.VariantSmithWaterman:
		if j.Gap.Kind != GapLinear {
			fail("variant %s needs a linear gap, got %q", v, j.Gap.Kind)
		}
	case align.VariantGotoh, align.VariantGotohGlobal:
		if j.Gap.Kind != GapAffine {
			fail("variant %s needs an affine gap, got %q", v, j.Gap.Kind)
		}
	}
	if _, err := j.gapCost(); err != nil {
		fail("%v", err)
	}
	if _, err := j.similarity(); err != nil {
		fail("%v", err)
	}

	return errs.Err()
}

func (j Job) label() string {
	if j.Name == "" {
		return "<unnamed>"
	}

	return j.Name
}

func (j Job) similarity() (align.Similarity, error) {
	switch j.Similarity.Kind {
	case SimilarityBinary:
		return scoring.Binary(j.S, j.T, j.Similarity.Match, j.Similarity.Mismatch), nil
	case SimilarityDNAFull:
		return scoring.DNAFull().Similarity(j.S, j.T)
	default:
		return nil, fmt.Errorf("unknown similarity kind %q", j.Similarity.Kind)
	}
}

func (j Job) gapCost() (align.GapCost, error) {
	switch j.Gap.Kind {
	case GapLinear:
		return scoring.Linear(j.Gap.Cost), nil
	case GapAffine:
		return scoring.Affine(j.Gap.Open, j.Gap.Extend).Cost, nil
	case GapExponential:
		if j.Gap.Base <= 0 {
			return nil, fmt.Errorf("exponential gap needs base > 0, got %g", j.Gap.Base)
		}
		return scoring.Exponential(j.Gap.Base), nil
	default:
		return nil, fmt.Errorf("unknown gap kind %q", j.Gap.Kind)
	}
}

// Execute runs j on a. The job must have passed Validate.
func (j Job) Execute(a *align.Aligner) error {
	v, err := align.ParseVariant(j.Variant)
	if err != nil {
		return err
	}
	sim, err := j.similarity()
	if err != nil {
		return err
	}
	gap, err := j.gapCost()
	if err != nil {
		return err
	}
	n, m := len([]rune(j.S)), len([]rune(j.T))
	affine := scoring.Affine(j.Gap.Open, j.Gap.Extend)

	switch v {
	case align.VariantNeedlemanWunsch:
		return a.NeedlemanWunsch(sim, j.Gap.Cost, n, m)
	case align.VariantSmithWaterman:
		return a.SmithWaterman(sim, j.Gap.Cost, n, m)
	case align.VariantWatermanSmithBeyer:
		return a.WatermanSmithBeyer(sim, gap, n, m)
	case align.VariantWatermanSmithBeyerGlobal:
		return a.WatermanSmithBeyerGlobal(sim, gap, n, m)
	case align.VariantGotoh:
		return a.Gotoh(sim, affine, n, m)
	case align.VariantGotohGlobal:
		return a.GotohGlobal(sim, affine, n, m)
	default:
		return fmt.Errorf("%w: %s: variant %s", ErrInvalidJob, j.label(), v)
	}
}
