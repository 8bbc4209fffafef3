package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
}

// Offline dump of the part store: which files have staged bytes, pending
// parts or an assembled blob. Opens the database read-only so it can run
// next to a live engine.
func main() {
	prefix := flag.String("prefix", "", "key prefix to scan (stage:, part:, blob:, mime:)")
	flag.Parse()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	opts := badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Role", "File Key", "Size"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{key, roleOf(key), fileKeyOf(key), color.Cyan.Sprintf("%d B", len(v))})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	table.Render()
}

func roleOf(key string) string {
	switch {
	case strings.HasPrefix(key, "blob:"):
		return color.Green.Sprint("BLOB")
	case strings.HasPrefix(key, "part:"):
		return color.Yellow.Sprint("PART")
	case strings.HasPrefix(key, "stage:"):
		return color.Blue.Sprint("STAGE")
	case strings.HasPrefix(key, "mime:"):
		return "MIME"
	default:
		return "RAW"
	}
}

func fileKeyOf(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 2 {
		return "-"
	}
	return parts[1]
}
