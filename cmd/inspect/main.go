// Command inspect dumps the badger keyspace as a table. Handy to check what
// the server persisted without starting it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"

	"chat-hub/domain"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, user:, chat:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.Cyanln("Scanning", *dbPath, "with prefix", *prefix)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Entity ID", "Detail"})
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

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				table.Append(rowFor(key, v))
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
	color.Greenln(count, "entries")
}

func rowFor(key string, val []byte) []string {
	var message domain.Message
	if err := json.Unmarshal(val, &message); err == nil && message.SenderID != "" {
		return []string{
			key, "MESSAGE",
			message.CreatedAt.Format(time.TimeOnly),
			short(message.ID.String()),
			fmt.Sprintf("%s: %s", message.SenderID, message.Content),
		}
	}

	var user domain.User
	if err := json.Unmarshal(val, &user); err == nil && user.Username != "" {
		return []string{
			key, "USER",
			user.CreatedAt.Format(time.TimeOnly),
			short(user.ID),
			fmt.Sprintf("%s <%s>", user.Username, user.Email),
		}
	}

	var chat domain.Chat
	if err := json.Unmarshal(val, &chat); err == nil && chat.ID != "" {
		return []string{
			key, "CHAT", "--:--:--",
			short(chat.ID),
			fmt.Sprintf("%s (%d participants)", chat.Name, len(chat.Participants)),
		}
	}

	return []string{key, "RAW", "--:--:--", "--------", fmt.Sprintf("Size: %d bytes", len(val))}
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
