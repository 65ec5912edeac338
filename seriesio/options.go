package seriesio

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// Format holds the separators of the text format.
type Format struct {
	// TermSep separates coefficient and key ("|").
	TermSep string

	// KeySep separates key elements and symbol names (";").
	KeySep string

	// ItemSep separates the terms of a nested coefficient (",").
	ItemSep string
}

// DefaultFormat is the format written by default.
var DefaultFormat = Format{TermSep: "|", KeySep: key.DefaultSeparator, ItemSep: ","}

const (
	nestedOpen  = "{"
	nestedClose = "}"
	commentMark = "#"
	directive   = "@"
	evalMark    = "="
	evalSep     = ","
)

const (
	panicFormatInvalid = "seriesio: WithFormat: separators must be non-empty and distinct"
	panicPlacesInvalid = "seriesio: WithDecimalPlaces: places must be >= 0"
)

// Option configures reading and writing.
type Option func(*options)

type options struct {
	format     Format
	table      *symbol.Table
	log        logr.Logger
	places     int32 // < 0 ⇒ exact coefficient strings
	seriesOpts []series.Option
}

func gatherOptions(opts []Option) options {
	o := options{format: DefaultFormat, log: logr.Discard(), places: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = symbol.NewTable()
	}

	return o
}

// WithFormat overrides the separators. Panics on empty or clashing separators.
func WithFormat(f Format) Option {
	if f.TermSep == "" || f.KeySep == "" || f.ItemSep == "" ||
		f.TermSep == f.KeySep || f.TermSep == f.ItemSep || f.KeySep == f.ItemSep {
		panic(panicFormatInvalid)
	}

	return func(o *options) { o.format = f }
}

// WithTable resolves symbol names against t (a fresh table by default).
func WithTable(t *symbol.Table) Option {
	return func(o *options) { o.table = t }
}

// WithLogger receives diagnostics about skipped lines.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithDecimalPlaces makes writers render exact coefficients as fixed-point
// decimals with the given number of places (a lossy, human-oriented form).
func WithDecimalPlaces(places int32) Option {
	if places < 0 {
		panic(panicPlacesInvalid)
	}

	return func(o *options) { o.places = places }
}

// WithSeriesOptions forwards options to the series created by readers.
func WithSeriesOptions(opts ...series.Option) Option {
	return func(o *options) { o.seriesOpts = append(o.seriesOpts, opts...) }
}
