package config

// Recognized collection kinds.
const (
	KindDIT = "dit"
	KindIBS = "ibs"
	KindSIT = "sit"
	KindLCL = "lcl"
)

// IntervalSpec describes one interval to load into a collection at build
// time. Endpoints default to included when the corresponding *_included
// field is omitted.
type IntervalSpec struct {
	Low          int64  `yaml:"low"`
	High         int64  `yaml:"high"                    validate:"gtefield=Low"`
	LowIncluded  *bool  `yaml:"low_included,omitempty"`
	HighIncluded *bool  `yaml:"high_included,omitempty"`
	Label        string `yaml:"label,omitempty"`
}

// Inclusive resolves the endpoint inclusivity, defaulting both sides to
// included when left unset.
func (s IntervalSpec) Inclusive() (low, high bool) {
	low, high = true, true
	if s.LowIncluded != nil {
		low = *s.LowIncluded
	}
	if s.HighIncluded != nil {
		high = *s.HighIncluded
	}
	return low, high
}

// CollectionSpec describes one named interval collection and the index
// variant that should back it.
type CollectionSpec struct {
	Name                     string         `yaml:"name"                                validate:"required"`
	Kind                     string         `yaml:"kind"                                validate:"required,oneof=dit ibs sit lcl"`
	AllowReferenceDuplicates bool           `yaml:"allow_reference_duplicates,omitempty"`
	Intervals                []IntervalSpec `yaml:"intervals,omitempty"                 validate:"dive"`
}

// Configuration represents the configuration of the application: the set
// of interval collections to build and serve.
type Configuration struct {
	Collections []CollectionSpec `yaml:"collections" validate:"dive"`
}
