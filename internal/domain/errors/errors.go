package errors

import "fmt"

// KeyColumnNotFoundError reports a join key column that does not exist
// in the table it was named against. It is fatal and surfaced immediately.
type KeyColumnNotFoundError struct {
	Table  string // table name
	Column string // missing column name
}

func (e *KeyColumnNotFoundError) Error() string {
	return fmt.Sprintf("key column '%s' not found in table '%s'", e.Column, e.Table)
}

func NewKeyColumnNotFound(table, column string) *KeyColumnNotFoundError {
	return &KeyColumnNotFoundError{
		Table:  table,
		Column: column,
	}
}

// ColumnCollisionError reports a non-key column name present in both
// join inputs while the collision policy forbids automatic suffixing.
type ColumnCollisionError struct {
	Column string // ambiguous column name
	Left   string // left table name
	Right  string // right table name
}

func (e *ColumnCollisionError) Error() string {
	return fmt.Sprintf("column '%s' exists in both '%s' and '%s' and cannot be disambiguated", e.Column, e.Left, e.Right)
}

func NewColumnCollision(column, left, right string) *ColumnCollisionError {
	return &ColumnCollisionError{
		Column: column,
		Left:   left,
		Right:  right,
	}
}
