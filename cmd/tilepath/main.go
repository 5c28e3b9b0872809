// Command tilepath runs the queries of a scenario file and prints a summary
// line per query: algorithm, ops spent, rooms covered, destinations found
// and, with -path, the reconstructed path.
//
// Usage:
//
//	tilepath -scenario rooms.yaml [-query name] [-path]
//
// TILEPATH_SCENARIO, read from the environment or a .env file in the working
// directory, supplies the default for -scenario.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tilepath/arena"
	"github.com/katalvlaran/tilepath/scenario"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tilepath: ")

	// a missing .env file is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}

	file := flag.String("scenario", os.Getenv("TILEPATH_SCENARIO"), "scenario YAML file")
	query := flag.String("query", "", "run only this query")
	showPath := flag.Bool("path", false, "print path tiles")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, *file, *query, *showPath); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, file, query string, showPath bool) error {
	s, err := scenario.Load(file)
	if err != nil {
		return err
	}
	names := s.Names()
	if query != "" {
		names = []string{query}
	}

	// each query is one generation; its outcome is released when the next starts
	a := arena.New()
	defer func() { a.Advance(a.Generation() + 1) }()

	for i, name := range names {
		out, err := s.Run(name)
		if err != nil {
			return fmt.Errorf("query %s: %w", name, err)
		}
		arena.Ephemeral(a, uint64(i+1), out)
		report(w, out, showPath)
	}

	return nil
}

func report(w io.Writer, out *scenario.Outcome, showPath bool) {
	rooms := make([]string, len(out.Rooms))
	for i, r := range out.Rooms {
		rooms[i] = r.String()
	}
	fmt.Fprintf(w, "%s (%s): ops=%d rooms=[%s] stop=%q found=%v",
		out.Query, out.Algorithm, out.Ops, strings.Join(rooms, " "), out.Stop, out.Found)
	if out.Path != nil {
		fmt.Fprintf(w, " path=%d", out.Path.Len())
	}
	fmt.Fprintln(w)

	if showPath && out.Path != nil {
		for i, p := range out.Path.All() {
			fmt.Fprintf(w, "  %3d %s\n", i, p)
		}
	}
}
