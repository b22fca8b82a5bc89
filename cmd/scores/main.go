// Command scores lists the saved high scores or exports them as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/systems"
	"github.com/gocarina/gocsv"
)

func main() {
	asCSV := flag.Bool("csv", false, "write the list as CSV")
	flag.Parse()

	store, err := systems.OpenStore(config.C.AppName)
	if err != nil {
		log.Fatalf("Failed to open scores: %v", err)
	}
	scores, err := store.ListScores()
	if err != nil {
		log.Fatalf("Failed to read scores: %v", err)
	}

	if *asCSV {
		err = writeCSV(os.Stdout, scores)
	} else {
		err = writeTable(os.Stdout, scores)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func writeCSV(w io.Writer, scores []game.ScoreEntry) error {
	if err := gocsv.Marshal(scores, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, scores []game.ScoreEntry) error {
	if len(scores) == 0 {
		_, err := fmt.Fprintln(w, "no scores yet")
		return err
	}
	for i, e := range scores {
		if _, err := fmt.Fprintf(w, "%2d. %6d  level %d  %s\n", i+1, e.Score, e.Level, e.At.Local().Format(time.DateTime)); err != nil {
			return err
		}
	}
	return nil
}
