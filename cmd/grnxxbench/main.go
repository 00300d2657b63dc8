// cmd/grnxxbench/main.go
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/groonga/grnxx-sub002/internal/builder"
	"github.com/groonga/grnxx-sub002/internal/column"
	"github.com/groonga/grnxx-sub002/internal/engineopts"
	"github.com/groonga/grnxx-sub002/internal/expr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return
	}

	switch args[0] {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-v", "version":
		fmt.Println("grnxxbench", version)
	case "bench":
		rows := 65536
		if len(args) > 1 {
			if n, err := parseCount(args[1]); err == nil {
				rows = n
			}
		}
		runBench(rows)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		showUsage()
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println(`grnxxbench - a demo driver for the grnxx-sub002 table engine

Usage:
  grnxxbench bench [row-count]   insert random rows, index them, run a filter query
  grnxxbench version             print the build version
  grnxxbench help                show this message`)
}

func parseCount(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}

// runBench builds a table with an indexed Int column and a keyed Text
// column, times bulk insertion, index construction and a score >= 500000
// filter over a full table scan, and reports the results the way a
// developer would eyeball a quick local benchmark.
func runBench(rows int) {
	tbl := column.NewTable("Bench")
	if _, err := column.NewTextColumn(tbl, "tag", true); err != nil {
		fatal(err)
	}
	score, err := column.NewIntColumn(tbl, "score", false, nil)
	if err != nil {
		fatal(err)
	}

	rng := rand.New(rand.NewSource(1))

	insertStart := time.Now()
	for i := 0; i < rows; i++ {
		id, err := tbl.InsertRowWithKey(value.FromText(value.NewText([]byte(uuid.NewString()))))
		if err != nil {
			fatal(err)
		}
		if err := score.Set(id, value.FromInt(value.Int(rng.Intn(1_000_000)))); err != nil {
			fatal(err)
		}
	}
	insertElapsed := time.Since(insertStart)

	idxStart := time.Now()
	idx, err := score.CreateIndex("score_idx")
	if err != nil {
		fatal(err)
	}
	idxElapsed := time.Since(idxStart)

	b := builder.New(tbl)
	if err := b.PushColumn("score"); err != nil {
		fatal(err)
	}
	b.PushConstant(value.FromInt(500_000))
	if err := b.PushOperatorBinary(expr.GreaterEqual); err != nil {
		fatal(err)
	}
	filterExpr, err := b.Release(engineopts.DefaultExpressionOptions())
	if err != nil {
		fatal(err)
	}

	cur := tbl.CreateCursor(engineopts.DefaultCursorOptions())
	var rs record.Set
	for {
		n, err := cur.Read(4096, &rs)
		if err != nil {
			fatal(err)
		}
		if n == 0 {
			break
		}
	}
	filterStart := time.Now()
	if err := filterExpr.Filter(&rs, 0, 0, -1); err != nil {
		fatal(err)
	}
	filterElapsed := time.Since(filterStart)

	fmt.Printf("inserted %s rows in %s\n", humanize.Comma(int64(rows)), insertElapsed)
	fmt.Printf("built score index (%s entries) in %s\n", humanize.Comma(int64(idx.Count())), idxElapsed)
	fmt.Printf("filtered score >= 500000: %s rows in %s\n", humanize.Comma(int64(rs.Len())), filterElapsed)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "grnxxbench:", err)
	os.Exit(1)
}
