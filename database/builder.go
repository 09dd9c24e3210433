package database

import (
	"fmt"
	"strings"
)

// updateBuilder assembles a partial UPDATE from "column = $n" fragments and
// a parallel argument list. Fragments keep insertion order so placeholder
// numbering is deterministic. Column names are always literals supplied by
// the store code; user input only ever travels through the bound arguments.
type updateBuilder struct {
	frags []string
	args  []any
}

// Set appends one column assignment.
func (b *updateBuilder) Set(column string, value any) {
	b.frags = append(b.frags, fmt.Sprintf("%s = $%d", column, len(b.args)+1))
	b.args = append(b.args, value)
}

// SetPair appends two columns that must change together (title and its
// derived slug).
func (b *updateBuilder) SetPair(colA string, valA any, colB string, valB any) {
	b.Set(colA, valA)
	b.Set(colB, valB)
}

func (b *updateBuilder) Empty() bool { return len(b.frags) == 0 }

// Build produces the full statement, appending an automatic updated_at
// touch and the id filter. returning is the column list for RETURNING.
func (b *updateBuilder) Build(table, returning string, id any) (string, []any, error) {
	if b.Empty() {
		return "", nil, ErrNothingToUpdate
	}
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		table, strings.Join(b.frags, ", "), len(args), returning,
	)
	return query, args, nil
}
