package repo

// ItemFilter narrows down a listing of stock items.
//
// Query matches case-insensitively against name or category. Category
// restricts to an exact category; CategoryAll (or empty) means no
// restriction. Offset and Limit paginate the filtered sequence.
type ItemFilter struct {
	Query    string
	Category string
	Offset   *int
	Limit    *int
}
