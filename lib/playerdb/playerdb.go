// Package playerdb provisions a disposable Postgres container and bulk
// loads a CSV of player biographical records into it.
package playerdb

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	_ "embed"
)

//go:embed schema.sql
var Schema string

// Player is one row of the biographical CSV. Numeric fields keep their
// string form when the source cell is empty or malformed; cleanup beyond
// trimming is out of scope.
type Player struct {
	ID           string
	BirthYear    *int
	BirthCountry string
	NameFirst    string
	NameLast     string
	Weight       *int
	Height       *int
	Bats         string
	Throws       string
	Debut        string
}

// column names as they appear in the CSV header row
var csvColumns = []string{
	"playerID",
	"birthYear",
	"birthCountry",
	"nameFirst",
	"nameLast",
	"weight",
	"height",
	"bats",
	"throws",
	"debut",
}

func optionalInt(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ParseCSV decodes player records from r. The header row is required and
// is used to locate the columns of interest, so extra columns and column
// reordering in the source file are fine.
func ParseCSV(r io.Reader) ([]Player, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := map[string]int{}
	for i, name := range header {
		index[name] = i
	}
	for _, name := range csvColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("csv header is missing column %q", name)
		}
	}

	field := func(record []string, name string) string {
		return record[index[name]]
	}

	var players []Player
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		players = append(players, Player{
			ID:           field(record, "playerID"),
			BirthYear:    optionalInt(field(record, "birthYear")),
			BirthCountry: field(record, "birthCountry"),
			NameFirst:    field(record, "nameFirst"),
			NameLast:     field(record, "nameLast"),
			Weight:       optionalInt(field(record, "weight")),
			Height:       optionalInt(field(record, "height")),
			Bats:         field(record, "bats"),
			Throws:       field(record, "throws"),
			Debut:        field(record, "debut"),
		})
	}

	return players, nil
}

// Insert loads players into the database inside a single transaction.
func Insert(ctx context.Context, db *sql.DB, players []Player) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (
			player_id, birth_year, birth_country,
			name_first, name_last,
			weight, height, bats, throws, debut
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		_, err = stmt.ExecContext(
			ctx,
			p.ID, p.BirthYear, p.BirthCountry,
			p.NameFirst, p.NameLast,
			p.Weight, p.Height, p.Bats, p.Throws, p.Debut,
		)
		if err != nil {
			return fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// Load parses the CSV from r and inserts every record, returning the
// number of players loaded.
func Load(ctx context.Context, db *sql.DB, r io.Reader) (int, error) {
	players, err := ParseCSV(r)
	if err != nil {
		return 0, err
	}
	err = Insert(ctx, db, players)
	if err != nil {
		return 0, err
	}
	return len(players), nil
}
