package wikidata

// IsNotDeprecated is true unless the claim rank is exactly "deprecated".
func (c *Claim) IsNotDeprecated() bool {
	return c.Rank != "deprecated"
}

// HasMeaningfulValue is false for no-value and unknown-value main snaks.
func (c *Claim) HasMeaningfulValue() bool {
	return c.MainSnak.SnakType != SnakNoValue && c.MainSnak.SnakType != SnakSomeValue
}

func (c *Claim) HasQualifiers() bool {
	return len(c.Qualifiers) > 0
}

// EntityID returns the identifier of the entity the claim's main value
// references, or the empty string if the value is not an entity reference.
func (c *Claim) EntityID() string {
	return c.MainSnak.EntityID()
}
