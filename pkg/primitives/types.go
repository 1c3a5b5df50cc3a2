package primitives

// PageNumber represents a page number within the table's page arena
type PageNumber uint32

// RowID is the 0-based insertion position of a row within the table.
// A row's identity is its storage position, not its user-supplied id.
type RowID uint32

// Offset represents a byte offset within a page
type Offset uint32
