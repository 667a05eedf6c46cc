package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for catalog and footprint operations. Compare with
// errors.Is().
var (
	// ErrUnknownCategory indicates a category selector outside the
	// recognized set (all, food, clothing, electronics).
	ErrUnknownCategory = constError("unknown catalog category")

	// ErrFactorNotFound indicates no footprint factor matched the label.
	// Callers fall back to FallbackLitersPerUnit rather than failing.
	ErrFactorNotFound = constError("no footprint factor matches label")

	// ErrInvalidQuantity indicates a non-positive or non-finite quantity.
	// Quantity is explicit user input, so it is surfaced, never coerced.
	ErrInvalidQuantity = constError("quantity must be a positive number")

	// ErrItemNotFound indicates no catalog item has the requested ID.
	ErrItemNotFound = constError("no catalog item with that id")
)
