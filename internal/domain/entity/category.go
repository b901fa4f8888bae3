package entity

// DefaultCategoryName is the catch-all expense category label used when a
// category relation cannot be resolved to a page title.
const DefaultCategoryName = "Miscellaneous"

// DefaultSourceName is the catch-all income source label used when neither
// a source relation nor a select value resolves.
const DefaultSourceName = "Other"
