package svg

// Options configures extraction behavior. The storefront historically ran
// two slightly different extraction passes; both are variants of the same
// algorithm selected through these flags.
type Options struct {
	// MergeTspans joins every non-empty tspan into one newline-separated
	// text block. When false only the first line is kept.
	MergeTspans bool
	// RetainAttributes records each shape's element attributes verbatim in
	// addition to its resolved styles.
	RetainAttributes bool
}

// MigrateOptions returns the options used by the initial catalog migration:
// multi-line text, resolved styles only.
func MigrateOptions() Options {
	return Options{MergeTspans: true}
}

// ResyncOptions returns the options used by store resync runs: single-line
// text with raw shape attributes preserved.
func ResyncOptions() Options {
	return Options{RetainAttributes: true}
}
