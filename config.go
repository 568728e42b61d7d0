package toxid

import "github.com/samber/oops"

// ScanConfig controls which addresses FindAll extracts from free text.
// It follows the builder pattern for optional configuration and validation.
type ScanConfig struct {
	// Classical enables 76 character addresses
	// Default: true
	Classical bool

	// PostQuantum enables 92 character addresses
	// Default: true
	PostQuantum bool

	// RequireChecksum drops well-shaped candidates whose checksum fails
	// Default: true
	RequireChecksum bool

	// MaxResults caps the number of addresses returned
	// Default: 0 (no limit)
	MaxResults int
}

// NewScanConfig creates a new ScanConfig with sensible defaults.
func NewScanConfig() *ScanConfig {
	return &ScanConfig{
		Classical:       true,
		PostQuantum:     true,
		RequireChecksum: true,
		MaxResults:      0, // No limit by default
	}
}

// WithClassical enables or disables classical addresses.
func (c *ScanConfig) WithClassical(enabled bool) *ScanConfig {
	c.Classical = enabled
	return c
}

// WithPostQuantum enables or disables post-quantum addresses.
func (c *ScanConfig) WithPostQuantum(enabled bool) *ScanConfig {
	c.PostQuantum = enabled
	return c
}

// WithRequireChecksum sets whether candidates must pass the checksum.
func (c *ScanConfig) WithRequireChecksum(required bool) *ScanConfig {
	c.RequireChecksum = required
	return c
}

// WithMaxResults caps the number of results. Use 0 for no limit.
func (c *ScanConfig) WithMaxResults(n int) *ScanConfig {
	c.MaxResults = n
	return c
}

// Validate checks if the configuration is valid and complete.
// Returns an error with context if validation fails.
func (c *ScanConfig) Validate() error {
	if !c.Classical && !c.PostQuantum {
		return oops.
			Code("INVALID_CONFIG").
			In("toxid").
			With("config", c).
			Errorf("at least one address variant must be enabled")
	}

	if c.MaxResults < 0 {
		return oops.
			Code("INVALID_CONFIG").
			In("toxid").
			With("max_results", c.MaxResults).
			Errorf("max results must be >= 0 (0 = no limit)")
	}

	return nil
}

// accepts reports whether a candidate of the given variant is wanted.
func (c *ScanConfig) accepts(v Variant) bool {
	switch v {
	case VariantClassical:
		return c.Classical
	case VariantPostQuantum:
		return c.PostQuantum
	default:
		return false
	}
}
