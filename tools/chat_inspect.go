package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Read-only inspector for the chat stores. Secondary index keys
// (user:email:, user:name:, dchat:pair:, dchat:user:, gchat:user:)
// only hold ids and are skipped; point the prefix at a record family:
//
//	go run tools/chat_inspect.go -db /tmp/chat -prefix msg:
//	go run tools/chat_inspect.go -db /tmp/chat -prefix user:id:
func main() {
	dbPath := flag.String("db", "/tmp/chat", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, user:id:, dchat:id:, gchat:id:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(" chat store — " + *prefix + " "))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "ID", "Detail", "Status", "At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
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
			if isIndexKey(key) {
				continue
			}

			err := item.Value(func(value []byte) error {
				row, err := toRow(key, value)
				if err != nil {
					// Keep scanning, one broken record should not kill the report.
					fmt.Printf("Error decoding key %s: %v\n", key, err)
					return nil
				}
				table.Append(row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func isIndexKey(key string) bool {
	for _, indexPrefix := range []string{"user:email:", "user:name:", "dchat:pair:", "dchat:user:", "gchat:user:"} {
		if strings.HasPrefix(key, indexPrefix) {
			return true
		}
	}
	return false
}

// Mirrors of the repository disk records, trimmed to what the report shows.
type userRow struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type directChatRow struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
	CreatedAt    int64    `json:"created_at"`
}

type groupChatRow struct {
	ID           string `json:"id"`
	Participants []struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	} `json:"participants"`
	GroupName string `json:"group_name"`
	State     string `json:"state"`
	CreatedAt int64  `json:"created_at"`
}

type messageRow struct {
	ID        string `json:"id"`
	ChatID    string `json:"chat_id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

func toRow(key string, value []byte) ([]string, error) {
	switch {
	case strings.HasPrefix(key, "user:id:"):
		var row userRow
		if err := json.Unmarshal(value, &row); err != nil {
			return nil, err
		}
		return []string{key, shortID(row.ID), row.Username + " <" + row.Email + ">", row.Status, formatAt(row.CreatedAt)}, nil
	case strings.HasPrefix(key, "dchat:id:"):
		var row directChatRow
		if err := json.Unmarshal(value, &row); err != nil {
			return nil, err
		}
		pair := strings.Join(shortIDs(row.Participants), " ↔ ")
		return []string{key, shortID(row.ID), pair, "", formatAt(row.CreatedAt)}, nil
	case strings.HasPrefix(key, "gchat:id:"):
		var row groupChatRow
		if err := json.Unmarshal(value, &row); err != nil {
			return nil, err
		}
		detail := fmt.Sprintf("%s (%d participants)", row.GroupName, len(row.Participants))
		return []string{key, shortID(row.ID), detail, row.State, formatAt(row.CreatedAt)}, nil
	case strings.HasPrefix(key, "msg:"):
		var row messageRow
		if err := json.Unmarshal(value, &row); err != nil {
			return nil, err
		}
		detail := fmt.Sprintf("%s: %s", shortID(row.SenderID), row.Content)
		return []string{key, shortID(row.ID), detail, row.Status, formatAt(row.CreatedAt)}, nil
	default:
		return []string{key, "", string(value), "", ""}, nil
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func shortIDs(ids []string) []string {
	short := make([]string, len(ids))
	for i, id := range ids {
		short[i] = shortID(id)
	}
	return short
}

func formatAt(unixNano int64) string {
	return time.Unix(0, unixNano).UTC().Format("2006-01-02 15:04:05")
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return db, nil
}
