package config

const (
	// MaxPlaceIDLength bounds external place identifiers.
	MaxPlaceIDLength = 255

	// MaxPlaceNameLength is the maximum length for place names.
	MaxPlaceNameLength = 255

	// MaxAddressLength is the maximum length for place addresses.
	MaxAddressLength = 500

	// MaxScheduleTitleLength fits PostgreSQL VARCHAR(255).
	MaxScheduleTitleLength = 255

	// MaxScheduleDescriptionLength keeps descriptions to a few paragraphs.
	MaxScheduleDescriptionLength = 5000

	// MaxChecklistTitleLength fits PostgreSQL VARCHAR(255).
	MaxChecklistTitleLength = 255

	// MaxChecklistItems caps the JSONB items array.
	MaxChecklistItems = 200
)
