package playerdb

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
)

const sampleCsv = `playerID,birthYear,birthMonth,birthDay,birthCountry,nameFirst,nameLast,weight,height,bats,throws,debut
aaronha01,1934,2,5,USA,Hank,Aaron,180,72,R,R,1954-04-13
abadan01,1972,8,25,USA,Andy,Abad,184,73,L,L,2001-09-10
mysteryjo01,,,,Cuba,Jo,Mystery,,,,,
`

func TestParseCSV(t *testing.T) {
	players, err := ParseCSV(strings.NewReader(sampleCsv))
	require.NoError(t, err)
	require.Len(t, players, 3)

	hank := players[0]
	require.Equal(t, "aaronha01", hank.ID)
	require.Equal(t, "Hank", hank.NameFirst)
	require.Equal(t, "Aaron", hank.NameLast)
	require.NotNil(t, hank.BirthYear)
	require.Equal(t, 1934, *hank.BirthYear)
	require.NotNil(t, hank.Weight)
	require.Equal(t, 180, *hank.Weight)
	require.Equal(t, "R", hank.Bats)
	require.Equal(t, "1954-04-13", hank.Debut)
}

// empty numeric cells become NULLs, not zeroes
func TestParseCSVEmptyNumericFields(t *testing.T) {
	players, err := ParseCSV(strings.NewReader(sampleCsv))
	require.NoError(t, err)

	mystery := players[2]
	require.Nil(t, mystery.BirthYear)
	require.Nil(t, mystery.Weight)
	require.Nil(t, mystery.Height)
	require.Equal(t, "Cuba", mystery.BirthCountry)
}

// the header row drives column lookup, so reordered or extra columns are fine
func TestParseCSVReorderedColumns(t *testing.T) {
	csv := `nameLast,playerID,extra,nameFirst,birthYear,birthCountry,weight,height,bats,throws,debut
Aaron,aaronha01,x,Hank,1934,USA,180,72,R,R,1954-04-13
`
	players, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "aaronha01", players[0].ID)
	require.Equal(t, "Aaron", players[0].NameLast)
}

func TestParseCSVMissingColumn(t *testing.T) {
	csv := "playerID,nameFirst\naaronha01,Hank\n"
	_, err := ParseCSV(strings.NewReader(csv))
	require.ErrorContains(t, err, "missing column")
}

func TestProvisionAndLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container provisioning in short mode")
	}

	ctx := context.Background()

	container, dsn, err := StartContainer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer container.Terminate(ctx)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, Schema)
	if err != nil {
		t.Fatal(err)
	}

	count, err := Load(ctx, db, strings.NewReader(sampleCsv))
	require.NoError(t, err)
	require.Equal(t, 3, count)

	var nameLast string
	err = db.QueryRowContext(
		ctx,
		`SELECT name_last FROM players WHERE player_id = $1`,
		"aaronha01",
	).Scan(&nameLast)
	require.NoError(t, err)
	require.Equal(t, "Aaron", nameLast)

	var birthYear sql.NullInt64
	err = db.QueryRowContext(
		ctx,
		`SELECT birth_year FROM players WHERE player_id = $1`,
		"mysteryjo01",
	).Scan(&birthYear)
	require.NoError(t, err)
	require.False(t, birthYear.Valid)
}
