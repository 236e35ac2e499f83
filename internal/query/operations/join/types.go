package join

// Type represents the join variant
type Type int

const (
	TypeInner Type = iota // Returns only matching rows from both tables
	TypeLeft              // Returns all rows from left table, missing right columns when unmatched
	TypeRight             // Returns all rows from right table, missing left columns when unmatched
	TypeFull              // Returns all rows from both tables, missing where no match
	TypeAnti              // Returns left rows with no match in right, left columns only
)

// String returns the string representation of the join variant
func (t Type) String() string {
	switch t {
	case TypeInner:
		return "INNER JOIN"
	case TypeLeft:
		return "LEFT JOIN"
	case TypeRight:
		return "RIGHT JOIN"
	case TypeFull:
		return "FULL OUTER JOIN"
	case TypeAnti:
		return "ANTI JOIN"
	default:
		return "UNKNOWN JOIN"
	}
}

// KeyPair names one pair of columns compared between the two tables.
// A join key is one or more pairs; rows match only when every pair agrees.
type KeyPair struct {
	Left  string
	Right string
}

// On builds a join key over identically named columns
func On(columns ...string) []KeyPair {
	key := make([]KeyPair, len(columns))
	for i, col := range columns {
		key[i] = KeyPair{Left: col, Right: col}
	}
	return key
}

// Policy controls what happens when a non-key column name exists in both tables
type Policy int

const (
	// CollideSuffix renames the right-side column by appending Options.Suffix.
	// The left column keeps its name. This is the default.
	CollideSuffix Policy = iota
	// CollideError fails the join with a ColumnCollisionError
	CollideError
)

// Options tunes collision handling for a join.
// A nil *Options means CollideSuffix with the default suffix.
type Options struct {
	Collision Policy
	Suffix    string // appended to colliding right-side columns, defaults to "_right"
}

func (o *Options) policy() Policy {
	if o == nil {
		return CollideSuffix
	}
	return o.Collision
}

func (o *Options) suffix() string {
	if o == nil || o.Suffix == "" {
		return "_right"
	}
	return o.Suffix
}
