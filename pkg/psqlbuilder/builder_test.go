package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "offer_id").
		From("stocks").
		Where(squirrel.Eq{"offer_id": 42}).
		Where(squirrel.Eq{"price_category_id": 7}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, offer_id FROM stocks WHERE offer_id = $1 AND price_category_id = $2", query)
	assert.Equal(t, []interface{}{42, 7}, args)
}

func TestInsert_MultipleRows(t *testing.T) {
	query, args, err := Insert("stocks").
		Columns("offer_id", "quantity").
		Values(1, 10).
		Values(1, nil).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO stocks (offer_id,quantity) VALUES ($1,$2),($3,$4)", query)
	assert.Len(t, args, 4)
}
