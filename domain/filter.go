package domain

// PropertyFilter is a structured filter request. Every dimension is optional;
// nil (or empty slice) means the dimension is not constrained. The fixed field
// order of the struct gives filter serialization a canonical form, so
// fingerprinting is insensitive to the order keys appeared in the request body.
type PropertyFilter struct {
	Type       *string  `json:"type,omitempty"`
	State      *string  `json:"state,omitempty"`
	City       *string  `json:"city,omitempty"`
	ListedBy   *string  `json:"listedBy,omitempty"`
	Furnished  *string  `json:"furnished,omitempty"`
	IsVerified *bool    `json:"isVerified,omitempty"`
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`
	Bedrooms   *int     `json:"bedrooms,omitempty"`
	Bathrooms  *int     `json:"bathrooms,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
}

// IsEmpty reports whether no dimension is constrained.
func (f PropertyFilter) IsEmpty() bool {
	return f.Type == nil && f.State == nil && f.City == nil && f.ListedBy == nil &&
		f.Furnished == nil && f.IsVerified == nil && f.MinPrice == nil &&
		f.MaxPrice == nil && f.Bedrooms == nil && f.Bathrooms == nil &&
		len(f.Tags) == 0 && len(f.Amenities) == 0
}
