package domain

// Dimension names a lookup that grows by name on demand during import.
type Dimension string

const (
	DimensionCity         Dimension = "city"
	DimensionState        Dimension = "state"
	DimensionCountry      Dimension = "country"
	DimensionPropertyType Dimension = "property_type"
)
