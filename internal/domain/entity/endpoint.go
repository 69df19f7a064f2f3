package entity

// Endpoint identifies the source of one fetch: either a predefined
// catalog dataset (Category and Dataset keys set) or a user-supplied
// URL (URL set). An Endpoint is immutable once selected for a given
// interaction.
type Endpoint struct {
	// Category is the catalog category key for predefined endpoints.
	Category string

	// Dataset is the catalog dataset key within the category.
	Dataset string

	// URL is the custom endpoint URL. Set only for custom endpoints.
	URL string

	// Name is an optional user-provided label for custom endpoints.
	Name string
}

// IsCustom reports whether the endpoint is a user-supplied URL rather
// than a predefined catalog dataset.
func (e Endpoint) IsCustom() bool {
	return e.URL != ""
}

// Validate checks that the endpoint identifies exactly one source.
// Catalog keys are pre-validated at load time, so only their presence
// is checked here; custom URLs are validated by ValidateURL at fetch time.
func (e Endpoint) Validate() error {
	if e.IsCustom() {
		if e.Category != "" || e.Dataset != "" {
			return &ValidationError{Field: "url", Message: "cannot be combined with a catalog selection"}
		}
		return nil
	}
	if e.Category == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	if e.Dataset == "" {
		return &ValidationError{Field: "dataset", Message: "is required"}
	}
	return nil
}

// DisplayName returns the label to render for this endpoint: the custom
// name if provided, otherwise a generic label for unnamed custom URLs.
// Predefined endpoints are named by the catalog, not here.
func (e Endpoint) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	if e.IsCustom() {
		return "Custom dataset"
	}
	return e.Dataset
}
